// Package notification turns workflow events into candidate/employer
// emails. It sits behind the queue dispatcher: everything here runs off
// the request path, and every failure is logged and dropped.
package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/api/metrics"
	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

// Service implements ports.NotificationService. It loads the recipient,
// honors their per-event preference flags, renders one of the two
// templates and hands the message to the mailer.
type Service struct {
	users  ports.UserRepository
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewService(users ports.UserRepository, mailer ports.Mailer, log zerolog.Logger) *Service {
	return &Service{users: users, mailer: mailer, log: log}
}

// Process renders and delivers a single notification. Returning an error
// only drives the dispatcher's logging; nothing is retried.
func (s *Service) Process(ctx context.Context, job ports.NotificationJob) error {
	recipient, err := s.users.FindByID(ctx, job.RecipientID)
	if err != nil {
		return fmt.Errorf("notification recipient: %w", err)
	}

	var subject, body string
	switch job.Kind {
	case ports.NotifyApplicationReceived:
		if !recipient.EmailNotifications.ApplicationReceived {
			s.log.Debug().Str("user_id", recipient.ID).Msg("application-received notification disabled, skipping")
			return nil
		}
		candidateName := "A candidate"
		if candidate, err := s.users.FindByID(ctx, job.CandidateID); err == nil {
			candidateName = candidate.Name
		}
		subject, body = applicationReceivedEmail(candidateName, job.JobTitle, job.ResumeURL)

	case ports.NotifyStatusChanged:
		if !recipient.EmailNotifications.StatusChanged {
			s.log.Debug().Str("user_id", recipient.ID).Msg("status-changed notification disabled, skipping")
			return nil
		}
		subject, body = statusChangedEmail(job.JobTitle, job.NewStatus)

	default:
		return fmt.Errorf("unknown notification kind %q", job.Kind)
	}

	if err := s.mailer.Send(ctx, recipient.Email, subject, body); err != nil {
		metrics.EmailFailuresTotal.WithLabelValues(string(job.Kind)).Inc()
		return fmt.Errorf("send %s email: %w", job.Kind, err)
	}

	metrics.EmailsSentTotal.WithLabelValues(string(job.Kind)).Inc()
	s.log.Info().
		Str("kind", string(job.Kind)).
		Str("recipient", recipient.Email).
		Msg("notification email sent")
	return nil
}

func applicationReceivedEmail(candidateName, jobTitle, resumeURL string) (subject, body string) {
	subject = fmt.Sprintf("New Application for %s", jobTitle)
	body = fmt.Sprintf(`
      <h2>New Application Received</h2>
      <p><strong>%s</strong> has applied to your job posting: <strong>%s</strong></p>
      <p>View resume: <a href="%s">Download Resume</a></p>
      <p>Log in to your dashboard to review the application.</p>
    `, candidateName, jobTitle, resumeURL)
	return subject, body
}

func statusChangedEmail(jobTitle string, status domain.ApplicationStatus) (subject, body string) {
	subject = fmt.Sprintf("Application Status Updated: %s", jobTitle)
	body = fmt.Sprintf(`
      <h2>Application Status Update</h2>
      <p>Your application for <strong>%s</strong> has been updated.</p>
      <p>New status: <strong>%s</strong></p>
      <p>Log in to your dashboard for more details.</p>
    `, jobTitle, status)
	return subject, body
}
