package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// TokenConfig holds the process-wide signing settings, loaded once at startup
// and passed in explicitly; nothing in this package reads ambient state.
type TokenConfig struct {
	Secret string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
	// Grace is how long past expiry a token may still be refreshed.
	Grace time.Duration
}

// ExpiryWarningWindow is the remaining lifetime below which the middleware
// advertises the advisory expiring-soon headers.
const ExpiryWarningWindow = 5 * time.Minute

var signingMethods = []string{jwt.SigningMethodHS256.Alg()}

// issueToken mints a signed HS256 token for the user, valid for ttl from now.
func issueToken(user *domain.User, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := &domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// verifyToken validates signature and expiry and decodes the claims.
// Failure kinds are collapsed into the three domain sentinels so callers can
// map them to responses without inspecting jwt internals.
func verifyToken(token, secret string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, keyFunc(secret), jwt.WithValidMethods(signingMethods))
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// decodeIgnoringExpiry checks the signature and decodes the claims without
// enforcing expiry. Only the refresh flow may use this.
func decodeIgnoringExpiry(token, secret string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, keyFunc(secret),
		jwt.WithValidMethods(signingMethods), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return claims, nil
}

func keyFunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenInvalid
	}
}
