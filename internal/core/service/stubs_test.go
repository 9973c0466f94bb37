package service

import (
	"context"
	"time"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

type stubJobRepo struct {
	createFn         func(ctx context.Context, job *domain.Job) error
	findByIDFn       func(ctx context.Context, id string) (*domain.Job, error)
	updateFn         func(ctx context.Context, job *domain.Job) error
	searchFn         func(ctx context.Context, filter ports.SearchJobsFilter) ([]*domain.Job, int64, error)
	listByEmployerFn func(ctx context.Context, employerID, status string, page, limit int) ([]*domain.Job, int64, error)
}

func (s *stubJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return s.createFn(ctx, job)
}

func (s *stubJobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return s.updateFn(ctx, job)
}

func (s *stubJobRepo) Search(ctx context.Context, filter ports.SearchJobsFilter) ([]*domain.Job, int64, error) {
	return s.searchFn(ctx, filter)
}

func (s *stubJobRepo) ListByEmployer(ctx context.Context, employerID, status string, page, limit int) ([]*domain.Job, int64, error) {
	return s.listByEmployerFn(ctx, employerID, status, page, limit)
}

type stubAppRepo struct {
	createFn          func(ctx context.Context, app *domain.Application) error
	findByIDFn        func(ctx context.Context, id string) (*domain.Application, error)
	updateStatusFn    func(ctx context.Context, id string, status domain.ApplicationStatus, entry domain.StatusHistoryEntry) error
	withdrawFn        func(ctx context.Context, id string, at time.Time) error
	listByCandidateFn func(ctx context.Context, candidateID, status string, page, limit int) ([]*domain.Application, int64, error)
	listByJobFn       func(ctx context.Context, jobID, status string, page, limit int) ([]*domain.Application, int64, error)
	countByJobFn      func(ctx context.Context, jobID string) (int64, error)
}

func (s *stubAppRepo) Create(ctx context.Context, app *domain.Application) error {
	return s.createFn(ctx, app)
}

func (s *stubAppRepo) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubAppRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, entry domain.StatusHistoryEntry) error {
	return s.updateStatusFn(ctx, id, status, entry)
}

func (s *stubAppRepo) Withdraw(ctx context.Context, id string, at time.Time) error {
	return s.withdrawFn(ctx, id, at)
}

func (s *stubAppRepo) ListByCandidate(ctx context.Context, candidateID, status string, page, limit int) ([]*domain.Application, int64, error) {
	return s.listByCandidateFn(ctx, candidateID, status, page, limit)
}

func (s *stubAppRepo) ListByJob(ctx context.Context, jobID, status string, page, limit int) ([]*domain.Application, int64, error) {
	return s.listByJobFn(ctx, jobID, status, page, limit)
}

func (s *stubAppRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	return s.countByJobFn(ctx, jobID)
}

// recordingDispatcher captures enqueued notification jobs for assertions.
type recordingDispatcher struct {
	jobs []ports.NotificationJob
}

func (d *recordingDispatcher) Enqueue(job ports.NotificationJob) {
	d.jobs = append(d.jobs, job)
}

type stubSigner struct {
	signFn func(ctx context.Context, key, mimeType string) (*ports.UploadCredential, error)
}

func (s *stubSigner) SignPut(ctx context.Context, key, mimeType string) (*ports.UploadCredential, error) {
	return s.signFn(ctx, key, mimeType)
}
