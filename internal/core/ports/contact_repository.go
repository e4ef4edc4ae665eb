package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ContactFilter narrows List results. A nil IsRead returns everything.
type ContactFilter struct {
	IsRead *bool
}

// ContactRepository defines contact-message persistence. List returns
// messages ordered by created_at descending (newest first).
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.ContactMessage, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
