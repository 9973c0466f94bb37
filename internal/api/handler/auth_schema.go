package handler

import (
	"time"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  userResponse `json:"user"`
}

// userResponse is the public view of an account. The password hash never
// leaves the domain layer.
type userResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	Role               string                    `json:"role"`
	Company            string                    `json:"company,omitempty"`
	Profile            domain.Profile            `json:"profile"`
	ResumeURL          string                    `json:"resume_url,omitempty"`
	EmailNotifications domain.EmailNotifications `json:"email_notifications"`
	CreatedAt          time.Time                 `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Company:            u.Company,
		Profile:            u.Profile,
		ResumeURL:          u.ResumeURL,
		EmailNotifications: u.EmailNotifications,
		CreatedAt:          u.CreatedAt,
	}
}
