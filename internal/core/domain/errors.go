package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCompanyRequired      = errors.New("company name is required for employers")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobClosed            = errors.New("job is closed")
	ErrInvalidSalaryRange   = errors.New("invalid salary range")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidUpload        = errors.New("invalid upload")
)
