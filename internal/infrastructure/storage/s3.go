// Package storage implements the upload-credential collaborator on top of
// S3 presigned PUTs.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

const presignExpiry = 15 * time.Minute

// Config captures the bucket settings for the signer.
type Config struct {
	Region string
	Bucket string
}

// S3Signer issues short-lived presigned PUT URLs scoped to a single key.
type S3Signer struct {
	presign *s3.PresignClient
	region  string
	bucket  string
}

// NewS3Signer builds a signer using the default AWS credential chain.
func NewS3Signer(ctx context.Context, cfg Config) (*S3Signer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Signer{
		presign: s3.NewPresignClient(client),
		region:  cfg.Region,
		bucket:  cfg.Bucket,
	}, nil
}

// SignPut returns a credential allowing exactly one PUT of the given
// content type to the given key, valid for presignExpiry.
func (s *S3Signer) SignPut(ctx context.Context, key, mimeType string) (*ports.UploadCredential, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(mimeType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put object: %w", err)
	}

	return &ports.UploadCredential{
		UploadURL: req.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Key:       key,
	}, nil
}
