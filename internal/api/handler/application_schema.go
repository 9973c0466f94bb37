package handler

import (
	"time"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// --- Request types ---

type applyRequest struct {
	JobID       string `json:"job_id"       validate:"required"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"   validate:"required,url"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=Applied Screening Interview Offer Rejected"`
	Note   string `json:"note"`
}

// --- Response types ---

type statusHistoryResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

type applicationResponse struct {
	ID            string                  `json:"id"`
	JobID         string                  `json:"job_id"`
	CandidateID   string                  `json:"candidate_id"`
	EmployerID    string                  `json:"employer_id"`
	CoverLetter   string                  `json:"cover_letter,omitempty"`
	ResumeURL     string                  `json:"resume_url,omitempty"`
	Status        string                  `json:"status"`
	StatusHistory []statusHistoryResponse `json:"status_history"`
	IsWithdrawn   bool                    `json:"is_withdrawn"`
	WithdrawnAt   *time.Time              `json:"withdrawn_at,omitempty"`
	AppliedAt     time.Time               `json:"applied_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	history := make([]statusHistoryResponse, len(a.StatusHistory))
	for i, h := range a.StatusHistory {
		history[i] = statusHistoryResponse{
			Status:    string(h.Status),
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
			Note:      h.Note,
		}
	}
	return applicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		CandidateID:   a.CandidateID,
		EmployerID:    a.EmployerID,
		CoverLetter:   a.CoverLetter,
		ResumeURL:     a.ResumeURL,
		Status:        string(a.Status),
		StatusHistory: history,
		IsWithdrawn:   a.IsWithdrawn,
		WithdrawnAt:   a.WithdrawnAt,
		AppliedAt:     a.AppliedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toApplicationListResponse(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	return out
}
