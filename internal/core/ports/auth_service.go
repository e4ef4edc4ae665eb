package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// AuthService covers the authentication surface: account creation, login,
// token verification and refresh.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify validates a bearer token and decodes its claims. Failures are
	// domain.ErrTokenExpired, domain.ErrTokenMalformed or domain.ErrTokenInvalid.
	Verify(token string) (*domain.Claims, error)
	// Refresh exchanges a token (possibly expired, within the grace period)
	// for a freshly issued one, re-reading the backing user record.
	Refresh(ctx context.Context, token string) (string, *domain.User, error)
}
