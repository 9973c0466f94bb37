package ports

import "context"

// UploadCredential is a short-lived, scoped credential for a direct
// browser-to-storage upload.
type UploadCredential struct {
	UploadURL string
	PublicURL string
	Key       string
}

// UploadSigner produces presigned write credentials for a given object key.
type UploadSigner interface {
	SignPut(ctx context.Context, key, mimeType string) (*UploadCredential, error)
}

// UploadService validates resume metadata and issues upload credentials.
type UploadService interface {
	PresignResume(ctx context.Context, filename, mimeType string, size int64) (*UploadCredential, error)
}
