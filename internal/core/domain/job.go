package domain

import "time"

// JobStatus is the lifecycle state of a job posting. Closing is one-way:
// a closed job is never reopened and never hard-deleted.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// EmploymentType is the contract type of a posting.
type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	PartTime   EmploymentType = "part-time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
)

// DefaultCurrency is the only currency the board operates in.
const DefaultCurrency = "INR"

// Company is the employer branding shown on a posting. The name is copied
// from the employer's profile at creation and immutable afterwards; only
// the logo URL may change.
type Company struct {
	Name    string `json:"name" bson:"name"`
	LogoURL string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
}

// Salary is an annual range in DefaultCurrency.
type Salary struct {
	Min      int    `json:"min" bson:"min"`
	Max      int    `json:"max" bson:"max"`
	Currency string `json:"currency" bson:"currency"`
}

// IsValidSalaryRange reports whether min and max form a usable range.
func IsValidSalaryRange(min, max int) bool {
	return min > 0 && max > 0 && min <= max
}

// Job is a posting owned by exactly one employer.
type Job struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	EmployerID     string         `json:"employer_id" bson:"employer_id"`
	Company        Company        `json:"company" bson:"company"`
	Title          string         `json:"title" bson:"title"`
	Description    string         `json:"description" bson:"description"`
	Location       string         `json:"location" bson:"location"`
	IsRemote       bool           `json:"is_remote" bson:"is_remote"`
	Salary         Salary         `json:"salary" bson:"salary"`
	EmploymentType EmploymentType `json:"employment_type" bson:"employment_type"`
	Tags           []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Status         JobStatus      `json:"status" bson:"status"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}
