package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

type recordingMailer struct {
	to      string
	subject string
	body    string
	sent    int
	err     error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.body = to, subject, htmlBody
	m.sent++
	return nil
}

func allOn() domain.EmailNotifications {
	return domain.EmailNotifications{ApplicationReceived: true, StatusChanged: true}
}

func TestProcess_ApplicationReceived(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"emp_1":  {ID: "emp_1", Email: "employer@acme.com", EmailNotifications: allOn()},
		"cand_1": {ID: "cand_1", Name: "Alice", EmailNotifications: allOn()},
	}}
	mailer := &recordingMailer{}
	svc := NewService(users, mailer, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationJob{
		Kind:          ports.NotifyApplicationReceived,
		ApplicationID: "app_1",
		RecipientID:   "emp_1",
		CandidateID:   "cand_1",
		JobTitle:      "Backend Engineer",
		ResumeURL:     "https://example.com/resume.pdf",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if mailer.to != "employer@acme.com" {
		t.Fatalf("wrong recipient: %s", mailer.to)
	}
	if !strings.Contains(mailer.subject, "Backend Engineer") {
		t.Fatalf("subject missing job title: %s", mailer.subject)
	}
	if !strings.Contains(mailer.body, "Alice") || !strings.Contains(mailer.body, "resume.pdf") {
		t.Fatalf("body missing candidate or resume link: %s", mailer.body)
	}
}

func TestProcess_StatusChanged(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"cand_1": {ID: "cand_1", Email: "alice@example.com", EmailNotifications: allOn()},
	}}
	mailer := &recordingMailer{}
	svc := NewService(users, mailer, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationJob{
		Kind:        ports.NotifyStatusChanged,
		RecipientID: "cand_1",
		JobTitle:    "Backend Engineer",
		NewStatus:   domain.StatusInterview,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if mailer.to != "alice@example.com" || !strings.Contains(mailer.body, "Interview") {
		t.Fatalf("unexpected email: to=%s body=%s", mailer.to, mailer.body)
	}
}

func TestProcess_PreferenceDisabled(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"cand_1": {ID: "cand_1", Email: "alice@example.com", EmailNotifications: domain.EmailNotifications{
			ApplicationReceived: true,
			StatusChanged:       false,
		}},
	}}
	mailer := &recordingMailer{}
	svc := NewService(users, mailer, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationJob{
		Kind:        ports.NotifyStatusChanged,
		RecipientID: "cand_1",
		NewStatus:   domain.StatusRejected,
	})
	if err != nil {
		t.Fatalf("a disabled preference is not an error: %v", err)
	}
	if mailer.sent != 0 {
		t.Fatalf("no email expected when the preference is off")
	}
}

func TestProcess_UnknownRecipient(t *testing.T) {
	svc := NewService(&stubUserRepo{}, &recordingMailer{}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationJob{
		Kind:        ports.NotifyStatusChanged,
		RecipientID: "ghost",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProcess_MailerFailure(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"cand_1": {ID: "cand_1", Email: "alice@example.com", EmailNotifications: allOn()},
	}}
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := NewService(users, mailer, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationJob{
		Kind:        ports.NotifyStatusChanged,
		RecipientID: "cand_1",
		NewStatus:   domain.StatusOffer,
	})
	if err == nil {
		t.Fatalf("expected mailer error to propagate")
	}
}
