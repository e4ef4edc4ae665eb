package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Create must fail with domain.ErrUsernameTaken when the username exists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
