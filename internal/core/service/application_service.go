package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/api/metrics"
	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

const candidateListLimit = 50

// ApplicationService is the workflow engine. It owns the append-only
// status history and applies the ownership checks that gate every
// mutation. Notification dispatch is best-effort and never affects the
// outcome of an operation.
type ApplicationService struct {
	apps       ports.ApplicationRepository
	jobs       ports.JobRepository
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	dispatcher ports.NotificationDispatcher,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, dispatcher: dispatcher, logger: logger}
}

// Apply creates an application in state Applied with a single seeded
// history entry. The unique (job, candidate) index resolves concurrent
// duplicates; the loser surfaces ErrDuplicateApplication.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.JobClosed {
		return nil, domain.ErrJobClosed
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:       job.ID,
		CandidateID: input.CandidateID,
		EmployerID:  job.EmployerID,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
		Status:      domain.StatusApplied,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusApplied, ChangedBy: input.CandidateID, ChangedAt: now},
		},
		AppliedAt: now,
		UpdatedAt: now,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.logger.Info().
		Str("application_id", app.ID).
		Str("job_id", job.ID).
		Str("candidate_id", input.CandidateID).
		Msg("application created")

	s.notify(ports.NotificationJob{
		Kind:          ports.NotifyApplicationReceived,
		ApplicationID: app.ID,
		RecipientID:   job.EmployerID,
		CandidateID:   input.CandidateID,
		JobTitle:      job.Title,
		ResumeURL:     input.ResumeURL,
	})

	return app, nil
}

// Transition advances an application along the status graph. Only the
// employer of record may transition, and only along an edge the graph
// allows; Rejected is terminal.
func (s *ApplicationService) Transition(ctx context.Context, input ports.TransitionInput) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	if app.EmployerID != input.EmployerID {
		metrics.TransitionRejectionsTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}
	if !app.Status.CanTransitionTo(input.Status) {
		metrics.TransitionRejectionsTotal.WithLabelValues("invalid_transition").Inc()
		return nil, fmt.Errorf("%w from %s to %s", domain.ErrInvalidTransition, app.Status, input.Status)
	}

	entry := domain.StatusHistoryEntry{
		Status:    input.Status,
		ChangedBy: input.EmployerID,
		ChangedAt: time.Now().UTC(),
		Note:      input.Note,
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, input.Status, entry); err != nil {
		s.logger.Error().Err(err).Str("application_id", app.ID).Msg("failed to update application status")
		return nil, err
	}

	app.Status = input.Status
	app.StatusHistory = append(app.StatusHistory, entry)
	app.UpdatedAt = entry.ChangedAt

	metrics.StatusTransitionsTotal.WithLabelValues(string(input.Status)).Inc()
	s.logger.Info().
		Str("application_id", app.ID).
		Str("status", string(input.Status)).
		Msg("application status changed")

	jobTitle := ""
	if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
		jobTitle = job.Title
	}
	s.notify(ports.NotificationJob{
		Kind:          ports.NotifyStatusChanged,
		ApplicationID: app.ID,
		RecipientID:   app.CandidateID,
		CandidateID:   app.CandidateID,
		JobTitle:      jobTitle,
		NewStatus:     input.Status,
	})

	return app, nil
}

// Withdraw flags an application as withdrawn by its candidate. The flag is
// independent of the status graph: it may be set in any state, including
// Rejected, and calling it again is a harmless overwrite of the timestamp.
func (s *ApplicationService) Withdraw(ctx context.Context, applicationID, candidateID string) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.CandidateID != candidateID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.apps.Withdraw(ctx, app.ID, now); err != nil {
		return nil, fmt.Errorf("withdraw application: %w", err)
	}

	app.IsWithdrawn = true
	app.WithdrawnAt = &now
	app.UpdatedAt = now

	s.logger.Info().Str("application_id", app.ID).Msg("application withdrawn")
	return app, nil
}

// ListByCandidate returns the candidate's own applications, newest first.
func (s *ApplicationService) ListByCandidate(ctx context.Context, candidateID, status string, page, limit int) (*ports.ApplicationPage, error) {
	page, limit = normalizePage(page, limit, candidateListLimit)

	apps, total, err := s.apps.ListByCandidate(ctx, candidateID, status, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list candidate applications: %w", err)
	}
	return &ports.ApplicationPage{
		Items:      apps,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ListByJob returns a job's applications to its owning employer.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID, employerID, status string, page, limit int) (*ports.ApplicationPage, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}

	page, limit = normalizePage(page, limit, defaultPageLimit)
	apps, total, err := s.apps.ListByJob(ctx, jobID, status, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return &ports.ApplicationPage{
		Items:      apps,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// notify enqueues a notification job. A nil dispatcher disables email
// side effects entirely (tests, local runs without SMTP).
func (s *ApplicationService) notify(job ports.NotificationJob) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Enqueue(job)
}
