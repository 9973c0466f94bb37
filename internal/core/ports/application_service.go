package ports

import (
	"context"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// ApplyInput carries all data needed to create an application.
type ApplyInput struct {
	JobID       string
	CandidateID string
	CoverLetter string
	ResumeURL   string
}

// TransitionInput carries a requested status change by an employer.
type TransitionInput struct {
	ApplicationID string
	EmployerID    string
	Status        domain.ApplicationStatus
	Note          string
}

// ApplicationPage is one page of applications plus pagination totals.
type ApplicationPage struct {
	Items      []*domain.Application
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ApplicationService is the workflow engine governing an application's
// lifecycle and the ownership checks that gate every mutation.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	Transition(ctx context.Context, input TransitionInput) (*domain.Application, error)
	Withdraw(ctx context.Context, applicationID, candidateID string) (*domain.Application, error)
	ListByCandidate(ctx context.Context, candidateID, status string, page, limit int) (*ApplicationPage, error)
	// ListByJob returns a job's applications to its owning employer.
	ListByJob(ctx context.Context, jobID, employerID, status string, page, limit int) (*ApplicationPage, error)
}
