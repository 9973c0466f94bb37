package handler

import (
	"time"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// --- Request types ---

type salaryRequest struct {
	Min int `json:"min" validate:"required,gt=0"`
	Max int `json:"max" validate:"required,gt=0"`
}

type createJobRequest struct {
	Title          string        `json:"title"            validate:"required"`
	Description    string        `json:"description"      validate:"required"`
	Location       string        `json:"location"         validate:"required"`
	IsRemote       bool          `json:"is_remote"`
	Salary         salaryRequest `json:"salary"           validate:"required"`
	EmploymentType string        `json:"employment_type"  validate:"required,oneof=full-time part-time contract internship"`
	Tags           []string      `json:"tags"`
	CompanyLogoURL string        `json:"company_logo_url" validate:"omitempty,url"`
}

// updateJobRequest is a partial update; absent fields stay untouched. The
// company name cannot be changed through this payload, only the logo URL.
type updateJobRequest struct {
	Title          *string        `json:"title"            validate:"omitempty,min=1"`
	Description    *string        `json:"description"      validate:"omitempty,min=1"`
	Location       *string        `json:"location"         validate:"omitempty,min=1"`
	IsRemote       *bool          `json:"is_remote"`
	Salary         *salaryRequest `json:"salary"`
	EmploymentType *string        `json:"employment_type"  validate:"omitempty,oneof=full-time part-time contract internship"`
	Tags           []string       `json:"tags"`
	CompanyLogoURL *string        `json:"company_logo_url" validate:"omitempty,url"`
}

type searchJobsQuery struct {
	Query          string `query:"q"`
	Location       string `query:"location"`
	IsRemote       *bool  `query:"is_remote"`
	SalaryMin      int    `query:"salary_min"`
	EmploymentType string `query:"employment_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Sort           string `query:"sort"            validate:"omitempty,oneof=date relevance"`
	Page           int    `query:"page"`
	Limit          int    `query:"limit"`
}

// --- Response types ---

type jobResponse struct {
	ID             string         `json:"id"`
	EmployerID     string         `json:"employer_id"`
	Company        domain.Company `json:"company"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	IsRemote       bool           `json:"is_remote"`
	Salary         domain.Salary  `json:"salary"`
	EmploymentType string         `json:"employment_type"`
	Tags           []string       `json:"tags,omitempty"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// jobDetailResponse adds the applicant count to a posting view.
type jobDetailResponse struct {
	jobResponse
	ApplicantCount int64 `json:"applicant_count"`
}
