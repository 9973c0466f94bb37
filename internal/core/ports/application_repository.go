package ports

import (
	"context"
	"time"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
// The unique (job_id, candidate_id) index is the arbiter of duplicate
// creations, including concurrent ones.
type ApplicationRepository interface {
	// Create inserts a new application. A duplicate (job, candidate) pair
	// returns domain.ErrDuplicateApplication.
	Create(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// UpdateStatus atomically sets the new status and appends a history
	// entry in a single document update.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, entry domain.StatusHistoryEntry) error
	// Withdraw sets the withdrawal flag and timestamp. It does not touch
	// the status or the history.
	Withdraw(ctx context.Context, id string, at time.Time) error
	ListByCandidate(ctx context.Context, candidateID string, status string, page, limit int) ([]*domain.Application, int64, error)
	ListByJob(ctx context.Context, jobID string, status string, page, limit int) ([]*domain.Application, int64, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
}
