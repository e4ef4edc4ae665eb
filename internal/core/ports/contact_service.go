package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CreateContactInput is a contact-form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService persists contact-form submissions and manages the inbox.
// Submit saves the message and triggers notification email delivery; email
// failure never fails the submission.
type ContactService interface {
	Submit(ctx context.Context, in CreateContactInput) (*domain.ContactMessage, error)
	Get(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string, read bool) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.ContactStats, error)
}
