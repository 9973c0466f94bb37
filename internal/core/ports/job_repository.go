package ports

import (
	"context"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// SearchJobsFilter carries all query parameters for the public job search.
// Only open jobs are ever returned.
type SearchJobsFilter struct {
	Query          string // optional: weighted full-text search over title/description/company
	Location       string // optional: case-insensitive substring match
	IsRemote       *bool  // optional: tri-state remote filter
	SalaryMin      int    // optional: salary.max >= SalaryMin
	EmploymentType string // optional: exact employment type
	ByRelevance    bool   // sort by text score; honored only when Query is set
	Page           int    // 1-based
	Limit          int
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// Update replaces the mutable fields of an existing posting.
	Update(ctx context.Context, job *domain.Job) error
	// Search returns a page of open jobs matching filter and the total count.
	Search(ctx context.Context, filter SearchJobsFilter) ([]*domain.Job, int64, error)
	// ListByEmployer returns the employer's own postings, newest first.
	ListByEmployer(ctx context.Context, employerID string, status string, page, limit int) ([]*domain.Job, int64, error)
}
