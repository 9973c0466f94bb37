package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

const (
	resumeMimeType = "application/pdf"
	maxResumeBytes = 5 * 1024 * 1024
	resumeFolder   = "resumes"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadService validates resume metadata and issues scoped, short-lived
// upload credentials through the storage collaborator.
type UploadService struct {
	signer ports.UploadSigner
	logger zerolog.Logger
}

func NewUploadService(signer ports.UploadSigner, logger zerolog.Logger) *UploadService {
	return &UploadService{signer: signer, logger: logger}
}

// PresignResume rejects non-PDF or oversized files and returns a presigned
// write credential scoped to the resumes folder.
func (s *UploadService) PresignResume(ctx context.Context, filename, mimeType string, size int64) (*ports.UploadCredential, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidUpload)
	}
	if mimeType != resumeMimeType {
		return nil, fmt.Errorf("%w: only PDF files are allowed", domain.ErrInvalidUpload)
	}
	if size <= 0 || size > maxResumeBytes {
		return nil, fmt.Errorf("%w: file size must not exceed 5MB", domain.ErrInvalidUpload)
	}

	safe := unsafeFilenameChars.ReplaceAllString(filename, "_")
	key := fmt.Sprintf("%s/%s-%s", resumeFolder, uuid.NewString(), safe)

	cred, err := s.signer.SignPut(ctx, key, mimeType)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to presign resume upload")
		return nil, fmt.Errorf("presign resume: %w", err)
	}
	return cred, nil
}
