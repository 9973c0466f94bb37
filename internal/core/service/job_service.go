package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/api/metrics"
	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// JobService implements posting CRUD, search, and the ownership checks
// gating every mutation.
type JobService struct {
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, apps ports.ApplicationRepository, users ports.UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, apps: apps, users: users, logger: logger}
}

// Create publishes a new posting. The company name comes from the
// employer's profile, not from request input, and the salary currency is
// always DefaultCurrency.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if !domain.IsValidSalaryRange(input.SalaryMin, input.SalaryMax) {
		return nil, domain.ErrInvalidSalaryRange
	}

	employer, err := s.users.FindByID(ctx, input.EmployerID)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	if strings.TrimSpace(employer.Company) == "" {
		return nil, domain.ErrCompanyRequired
	}

	now := time.Now().UTC()
	job := &domain.Job{
		EmployerID: input.EmployerID,
		Company: domain.Company{
			Name:    employer.Company,
			LogoURL: input.CompanyLogoURL,
		},
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		IsRemote:    input.IsRemote,
		Salary: domain.Salary{
			Min:      input.SalaryMin,
			Max:      input.SalaryMax,
			Currency: domain.DefaultCurrency,
		},
		EmploymentType: domain.EmploymentType(input.EmploymentType),
		Tags:           input.Tags,
		Status:         domain.JobOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("employer_id", input.EmployerID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(input.EmploymentType).Inc()
	s.logger.Info().Str("job_id", job.ID).Str("employer_id", job.EmployerID).Msg("job created")
	return job, nil
}

// Get returns a posting together with its applicant count. Public.
func (s *JobService) Get(ctx context.Context, id string) (*ports.JobDetail, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.apps.CountByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("get job: count applicants: %w", err)
	}

	return &ports.JobDetail{Job: job, ApplicantCount: count}, nil
}

// Update applies a partial update to an owned posting. The company name is
// immutable once the job exists; only the logo URL may change.
func (s *JobService) Update(ctx context.Context, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != input.EmployerID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.IsRemote != nil {
		job.IsRemote = *input.IsRemote
	}
	if input.SalaryMin != nil || input.SalaryMax != nil {
		min, max := job.Salary.Min, job.Salary.Max
		if input.SalaryMin != nil {
			min = *input.SalaryMin
		}
		if input.SalaryMax != nil {
			max = *input.SalaryMax
		}
		if !domain.IsValidSalaryRange(min, max) {
			return nil, domain.ErrInvalidSalaryRange
		}
		job.Salary = domain.Salary{Min: min, Max: max, Currency: domain.DefaultCurrency}
	}
	if input.EmploymentType != nil {
		job.EmploymentType = domain.EmploymentType(*input.EmploymentType)
	}
	if input.Tags != nil {
		job.Tags = input.Tags
	}
	if input.CompanyLogoURL != nil {
		job.Company.LogoURL = *input.CompanyLogoURL
	}
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("job_id", job.ID).Msg("failed to update job")
		return nil, err
	}
	return job, nil
}

// Close soft-deletes an owned posting. Closed jobs never reopen.
func (s *JobService) Close(ctx context.Context, jobID, employerID string) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return domain.ErrForbidden
	}

	job.Status = domain.JobClosed
	job.UpdatedAt = time.Now().UTC()

	if err := s.jobs.Update(ctx, job); err != nil {
		return fmt.Errorf("close job: %w", err)
	}

	s.logger.Info().Str("job_id", jobID).Str("employer_id", employerID).Msg("job closed")
	return nil
}

// Search runs the public job search. Relevance ordering is honored only
// when a text query is present; otherwise results are newest first.
func (s *JobService) Search(ctx context.Context, filter ports.SearchJobsFilter) (*ports.SearchJobsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, defaultPageLimit)
	if filter.Query == "" {
		filter.ByRelevance = false
	}

	jobs, total, err := s.jobs.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	return &ports.SearchJobsResult{
		Items:      jobs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// ListOwn returns the employer's postings with applicant counts.
func (s *JobService) ListOwn(ctx context.Context, employerID, status string, page, limit int) (*ports.JobPage, error) {
	page, limit = normalizePage(page, limit, defaultPageLimit)

	jobs, total, err := s.jobs.ListByEmployer(ctx, employerID, status, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}

	items := make([]ports.JobDetail, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.apps.CountByJob(ctx, job.ID)
		if err != nil {
			return nil, fmt.Errorf("list employer jobs: count applicants: %w", err)
		}
		items = append(items, ports.JobDetail{Job: job, ApplicantCount: count})
	}

	return &ports.JobPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
