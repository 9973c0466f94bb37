package ports

import (
	"context"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

// NotificationKind identifies one of the two email events the board sends.
type NotificationKind string

const (
	NotifyApplicationReceived NotificationKind = "application_received"
	NotifyStatusChanged       NotificationKind = "status_changed"
)

// NotificationJob is a fire-and-forget email task. ApplicationID doubles as
// the shard key so all notifications for one application stay ordered.
type NotificationJob struct {
	Kind          NotificationKind
	ApplicationID string
	RecipientID   string
	CandidateID   string
	JobTitle      string
	ResumeURL     string
	NewStatus     domain.ApplicationStatus
}

// NotificationService renders and delivers a single notification. Failures
// are logged by the caller and never retried.
type NotificationService interface {
	Process(ctx context.Context, job NotificationJob) error
}

// NotificationDispatcher enqueues notification jobs without blocking the
// triggering request.
type NotificationDispatcher interface {
	Enqueue(job NotificationJob)
}

// Mailer is the outbound email collaborator.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
