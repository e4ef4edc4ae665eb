package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ContactService persists contact-form submissions, guards against duplicate
// double-submits, and triggers the notification emails.
type ContactService struct {
	repo   ports.ContactRepository
	mailer ports.Mailer
	dedup  ports.SubmissionDeduper
	log    zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, mailer ports.Mailer, dedup ports.SubmissionDeduper, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, dedup: dedup, log: log}
}

// Submit saves the message and sends the notification and confirmation
// emails. The message is always persisted; email delivery is best-effort and
// skipped entirely when an identical submission was seen recently, so a
// double-click on the form does not fire duplicate mail.
func (s *ContactService) Submit(ctx context.Context, in ports.CreateContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	duplicate, err := s.dedup.Seen(ctx, in.Email, in.Message)
	if err != nil {
		// Dedup is advisory; fail open and send.
		s.log.Warn().Err(err).Msg("contact dedup check failed")
		duplicate = false
	}
	if duplicate {
		s.log.Info().Str("email", in.Email).Msg("duplicate contact submission, skipping email")
		return created, nil
	}

	if err := s.dedup.Mark(ctx, in.Email, in.Message); err != nil {
		s.log.Warn().Err(err).Msg("contact dedup mark failed")
	}

	if err := s.mailer.SendContactNotification(ctx, created); err != nil {
		s.log.Error().Err(err).Msg("contact notification email failed")
	}
	if err := s.mailer.SendContactConfirmation(ctx, created); err != nil {
		s.log.Error().Err(err).Msg("contact confirmation email failed")
	}

	return created, nil
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx, filter)
}

func (s *ContactService) MarkRead(ctx context.Context, id string, read bool) (*domain.ContactMessage, error) {
	return s.repo.SetRead(ctx, id, read)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats counts the inbox in one pass over all messages.
func (s *ContactService) Stats(ctx context.Context) (*domain.ContactStats, error) {
	msgs, err := s.repo.List(ctx, ports.ContactFilter{})
	if err != nil {
		return nil, err
	}

	stats := &domain.ContactStats{Total: len(msgs)}
	for _, m := range msgs {
		if m.IsRead {
			stats.Read++
		} else {
			stats.Unread++
		}
	}
	return stats, nil
}
