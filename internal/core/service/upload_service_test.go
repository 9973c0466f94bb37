package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

func TestUploadService_PresignResume(t *testing.T) {
	var signedKey string
	signer := &stubSigner{
		signFn: func(ctx context.Context, key, mimeType string) (*ports.UploadCredential, error) {
			signedKey = key
			return &ports.UploadCredential{
				UploadURL: "https://signed.example.com/" + key,
				PublicURL: "https://bucket.s3.us-east-1.amazonaws.com/" + key,
				Key:       key,
			}, nil
		},
	}
	svc := NewUploadService(signer, zerolog.Nop())

	cred, err := svc.PresignResume(context.Background(), "my resume (final).pdf", "application/pdf", 1024)
	if err != nil {
		t.Fatalf("presign: %v", err)
	}

	if !strings.HasPrefix(signedKey, "resumes/") {
		t.Fatalf("key not scoped to resumes folder: %s", signedKey)
	}
	if strings.ContainsAny(signedKey, " ()") {
		t.Fatalf("unsafe characters survived sanitization: %s", signedKey)
	}
	if cred.Key != signedKey {
		t.Fatalf("credential key mismatch: %s != %s", cred.Key, signedKey)
	}
}

func TestUploadService_RejectsNonPDF(t *testing.T) {
	svc := NewUploadService(&stubSigner{}, zerolog.Nop())

	_, err := svc.PresignResume(context.Background(), "resume.docx", "application/msword", 1024)
	if !errors.Is(err, domain.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestUploadService_RejectsOversized(t *testing.T) {
	svc := NewUploadService(&stubSigner{}, zerolog.Nop())

	_, err := svc.PresignResume(context.Background(), "resume.pdf", "application/pdf", maxResumeBytes+1)
	if !errors.Is(err, domain.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestUploadService_RejectsEmptyFilename(t *testing.T) {
	svc := NewUploadService(&stubSigner{}, zerolog.Nop())

	_, err := svc.PresignResume(context.Background(), "", "application/pdf", 1024)
	if !errors.Is(err, domain.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestUploadService_UniqueKeys(t *testing.T) {
	keys := map[string]struct{}{}
	signer := &stubSigner{
		signFn: func(ctx context.Context, key, mimeType string) (*ports.UploadCredential, error) {
			keys[key] = struct{}{}
			return &ports.UploadCredential{Key: key}, nil
		},
	}
	svc := NewUploadService(signer, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, err := svc.PresignResume(context.Background(), "resume.pdf", "application/pdf", 1024); err != nil {
			t.Fatalf("presign: %v", err)
		}
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", len(keys))
	}
}
