package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

func openJob() *domain.Job {
	return &domain.Job{
		ID:         "job_1",
		EmployerID: "emp_1",
		Title:      "Backend Engineer",
		Status:     domain.JobOpen,
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			if id != "job_1" {
				t.Fatalf("unexpected job id: %s", id)
			}
			return openJob(), nil
		},
	}
	apps := &stubAppRepo{
		createFn: func(ctx context.Context, app *domain.Application) error {
			app.ID = "app_1"
			return nil
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewApplicationService(apps, jobs, dispatcher, zerolog.Nop())

	app, err := svc.Apply(context.Background(), ports.ApplyInput{
		JobID:       "job_1",
		CandidateID: "cand_1",
		CoverLetter: "hello",
		ResumeURL:   "https://bucket.s3.us-east-1.amazonaws.com/resumes/x.pdf",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if app.Status != domain.StatusApplied {
		t.Fatalf("expected status Applied, got %s", app.Status)
	}
	if app.EmployerID != "emp_1" {
		t.Fatalf("employer id not denormalized: %s", app.EmployerID)
	}
	if len(app.StatusHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(app.StatusHistory))
	}
	if app.StatusHistory[0].Status != domain.StatusApplied || app.StatusHistory[0].ChangedBy != "cand_1" {
		t.Fatalf("unexpected seed history entry: %+v", app.StatusHistory[0])
	}

	if len(dispatcher.jobs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(dispatcher.jobs))
	}
	n := dispatcher.jobs[0]
	if n.Kind != ports.NotifyApplicationReceived || n.RecipientID != "emp_1" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestApplicationService_Apply_ClosedJob(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			job := openJob()
			job.Status = domain.JobClosed
			return job, nil
		},
	}
	apps := &stubAppRepo{
		createFn: func(ctx context.Context, app *domain.Application) error {
			t.Fatalf("should not create an application for a closed job")
			return nil
		},
	}
	svc := NewApplicationService(apps, jobs, nil, zerolog.Nop())

	_, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", CandidateID: "cand_1"})
	if !errors.Is(err, domain.ErrJobClosed) {
		t.Fatalf("expected ErrJobClosed, got %v", err)
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	svc := NewApplicationService(&stubAppRepo{}, jobs, nil, zerolog.Nop())

	_, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "missing", CandidateID: "cand_1"})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return openJob(), nil
		},
	}
	apps := &stubAppRepo{
		createFn: func(ctx context.Context, app *domain.Application) error {
			return domain.ErrDuplicateApplication
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewApplicationService(apps, jobs, dispatcher, zerolog.Nop())

	_, err := svc.Apply(context.Background(), ports.ApplyInput{JobID: "job_1", CandidateID: "cand_1"})
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(dispatcher.jobs) != 0 {
		t.Fatalf("no notification expected on duplicate")
	}
}

func pendingApplication(status domain.ApplicationStatus) *domain.Application {
	return &domain.Application{
		ID:          "app_1",
		JobID:       "job_1",
		CandidateID: "cand_1",
		EmployerID:  "emp_1",
		Status:      status,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusApplied, ChangedBy: "cand_1"},
		},
	}
}

func TestApplicationService_Transition_Success(t *testing.T) {
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusApplied), nil
		},
		updateStatusFn: func(ctx context.Context, id string, status domain.ApplicationStatus, entry domain.StatusHistoryEntry) error {
			if id != "app_1" || status != domain.StatusScreening {
				t.Fatalf("unexpected update: %s %s", id, status)
			}
			if entry.ChangedBy != "emp_1" || entry.Note != "looks promising" {
				t.Fatalf("unexpected history entry: %+v", entry)
			}
			return nil
		},
	}
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return openJob(), nil
		},
	}
	dispatcher := &recordingDispatcher{}
	svc := NewApplicationService(apps, jobs, dispatcher, zerolog.Nop())

	app, err := svc.Transition(context.Background(), ports.TransitionInput{
		ApplicationID: "app_1",
		EmployerID:    "emp_1",
		Status:        domain.StatusScreening,
		Note:          "looks promising",
	})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}

	if app.Status != domain.StatusScreening {
		t.Fatalf("expected Screening, got %s", app.Status)
	}
	if len(app.StatusHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(app.StatusHistory))
	}

	if len(dispatcher.jobs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(dispatcher.jobs))
	}
	n := dispatcher.jobs[0]
	if n.Kind != ports.NotifyStatusChanged || n.RecipientID != "cand_1" || n.NewStatus != domain.StatusScreening {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestApplicationService_Transition_InvalidEdge(t *testing.T) {
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusScreening), nil
		},
		updateStatusFn: func(ctx context.Context, id string, status domain.ApplicationStatus, entry domain.StatusHistoryEntry) error {
			t.Fatalf("should not persist an invalid transition")
			return nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	_, err := svc.Transition(context.Background(), ports.TransitionInput{
		ApplicationID: "app_1",
		EmployerID:    "emp_1",
		Status:        domain.StatusOffer,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	// The error must name both ends of the attempted edge.
	if !strings.Contains(err.Error(), "Screening") || !strings.Contains(err.Error(), "Offer") {
		t.Fatalf("error should name both statuses: %v", err)
	}
}

func TestApplicationService_Transition_RejectedTerminal(t *testing.T) {
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusRejected), nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	_, err := svc.Transition(context.Background(), ports.TransitionInput{
		ApplicationID: "app_1",
		EmployerID:    "emp_1",
		Status:        domain.StatusScreening,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApplicationService_Transition_WrongEmployer(t *testing.T) {
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusApplied), nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	_, err := svc.Transition(context.Background(), ports.TransitionInput{
		ApplicationID: "app_1",
		EmployerID:    "emp_2",
		Status:        domain.StatusScreening,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_Withdraw(t *testing.T) {
	withdrawn := false
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusInterview), nil
		},
		withdrawFn: func(ctx context.Context, id string, at time.Time) error {
			withdrawn = true
			return nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	app, err := svc.Withdraw(context.Background(), "app_1", "cand_1")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if !withdrawn {
		t.Fatalf("repository Withdraw not called")
	}
	if !app.IsWithdrawn || app.WithdrawnAt == nil {
		t.Fatalf("withdrawal flag not set: %+v", app)
	}
	// Withdrawing never touches the status graph.
	if app.Status != domain.StatusInterview {
		t.Fatalf("status should stay Interview, got %s", app.Status)
	}
	if len(app.StatusHistory) != 1 {
		t.Fatalf("withdrawal must not append history, got %d entries", len(app.StatusHistory))
	}
}

func TestApplicationService_Withdraw_WrongCandidate(t *testing.T) {
	apps := &stubAppRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return pendingApplication(domain.StatusApplied), nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	_, err := svc.Withdraw(context.Background(), "app_1", "cand_2")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_ListByJob_WrongEmployer(t *testing.T) {
	jobs := &stubJobRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Job, error) {
			return openJob(), nil
		},
	}
	svc := NewApplicationService(&stubAppRepo{}, jobs, nil, zerolog.Nop())

	_, err := svc.ListByJob(context.Background(), "job_1", "emp_2", "", 1, 20)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_ListByCandidate_Pagination(t *testing.T) {
	apps := &stubAppRepo{
		listByCandidateFn: func(ctx context.Context, candidateID, status string, page, limit int) ([]*domain.Application, int64, error) {
			if page != 1 || limit != candidateListLimit {
				t.Fatalf("expected defaults, got page=%d limit=%d", page, limit)
			}
			return []*domain.Application{pendingApplication(domain.StatusApplied)}, 51, nil
		},
	}
	svc := NewApplicationService(apps, &stubJobRepo{}, nil, zerolog.Nop())

	result, err := svc.ListByCandidate(context.Background(), "cand_1", "", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 51 || result.TotalPages != 2 {
		t.Fatalf("unexpected totals: %d pages=%d", result.Total, result.TotalPages)
	}
}
