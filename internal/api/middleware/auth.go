package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// PrincipalKey is the echo context key under which Authenticate stores the
// decoded domain.Principal.
const PrincipalKey = "principal"

// Advisory headers set when the presented token is close to expiry.
const (
	HeaderTokenExpiresSoon = "X-Token-Expires-Soon"
	HeaderTokenExpiresIn   = "X-Token-Expires-In"
)

// TokenVerifier validates a bearer token and decodes its claims.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// Authenticate gates a route on a valid bearer token. A missing or non-Bearer
// Authorization header is rejected before the verifier is consulted; verifier
// failures surface as the domain token errors, which the central error
// handler maps to 401 responses. On success the decoded principal is attached
// to the request context.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("no_token").Inc()
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			if claims.ExpiresAt != nil {
				remaining := time.Until(claims.ExpiresAt.Time)
				if remaining < service.ExpiryWarningWindow {
					c.Response().Header().Set(HeaderTokenExpiresSoon, "true")
					c.Response().Header().Set(HeaderTokenExpiresIn, strconv.Itoa(int(remaining.Seconds())))
				}
			}

			c.Set(PrincipalKey, claims.Principal())
			return next(c)
		}
	}
}

// BearerToken extracts the token from the Authorization header, failing with
// domain.ErrNoToken when the header is absent or not a Bearer scheme.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.ErrNoToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrNoToken
	}
	return parts[1], nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
