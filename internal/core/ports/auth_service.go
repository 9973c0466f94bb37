package ports

import (
	"context"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	// Company is required when Role is employer, ignored otherwise.
	Company string
}

// AuthService defines registration, login and session-token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
