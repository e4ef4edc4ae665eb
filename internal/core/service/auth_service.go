package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements registration, login, token verification and refresh.
type AuthService struct {
	users ports.UserRepository
	cfg   TokenConfig
	now   func() time.Time
}

func NewAuthService(users ports.UserRepository, cfg TokenConfig) *AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	if cfg.Grace <= 0 {
		cfg.Grace = 7 * 24 * time.Hour
	}
	return &AuthService{users: users, cfg: cfg, now: time.Now}
}

// Register creates the account and logs it in. The portfolio has a single
// owner, so every registered user is an admin.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := issueToken(created, s.cfg.Secret, s.cfg.TTL, s.now())
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login checks credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := issueToken(user, s.cfg.Secret, s.cfg.TTL, s.now())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify validates the token and decodes its claims.
func (s *AuthService) Verify(token string) (*domain.Claims, error) {
	return verifyToken(token, s.cfg.Secret)
}

// Refresh exchanges a possibly-expired token for a fresh one. The signature
// must verify; expiry is tolerated up to the configured grace period. The
// principal is re-read from the user store so the new token reflects the
// current record, not the stale claims.
func (s *AuthService) Refresh(ctx context.Context, token string) (string, *domain.User, error) {
	claims, err := decodeIgnoringExpiry(token, s.cfg.Secret)
	if err != nil {
		return "", nil, err
	}

	if claims.ExpiresAt != nil {
		elapsed := s.now().Sub(claims.ExpiresAt.Time)
		if elapsed > s.cfg.Grace {
			return "", nil, domain.ErrGraceExpired
		}
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrPrincipalNotFound
		}
		return "", nil, err
	}

	fresh, err := issueToken(user, s.cfg.Secret, s.cfg.TTL, s.now())
	if err != nil {
		return "", nil, err
	}
	return fresh, user, nil
}
