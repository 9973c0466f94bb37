package ports

import (
	"context"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// CreateJobInput carries all data needed to publish a posting. The company
// name is sourced from the employer's profile, never from the request.
type CreateJobInput struct {
	EmployerID     string
	Title          string
	Description    string
	Location       string
	IsRemote       bool
	SalaryMin      int
	SalaryMax      int
	EmploymentType string
	Tags           []string
	CompanyLogoURL string
}

// UpdateJobInput carries a partial update; nil fields are left untouched.
type UpdateJobInput struct {
	JobID          string
	EmployerID     string
	Title          *string
	Description    *string
	Location       *string
	IsRemote       *bool
	SalaryMin      *int
	SalaryMax      *int
	EmploymentType *string
	Tags           []string
	CompanyLogoURL *string
}

// JobDetail is a posting together with its applicant count.
type JobDetail struct {
	Job            *domain.Job
	ApplicantCount int64
}

// JobPage is one page of postings plus pagination totals.
type JobPage struct {
	Items      []JobDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SearchJobsResult is one page of public search results (no applicant counts).
type SearchJobsResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	// Get is public and includes the applicant count.
	Get(ctx context.Context, id string) (*JobDetail, error)
	Update(ctx context.Context, input UpdateJobInput) (*domain.Job, error)
	// Close soft-deletes a posting: a one-way transition to closed.
	Close(ctx context.Context, jobID, employerID string) error
	Search(ctx context.Context, filter SearchJobsFilter) (*SearchJobsResult, error)
	ListOwn(ctx context.Context, employerID, status string, page, limit int) (*JobPage, error)
}
