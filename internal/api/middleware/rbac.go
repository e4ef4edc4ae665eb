package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// RequireAdmin is a second gate applied after Authenticate for admin-only
// routes: 401 when no principal was attached, 403 when the role is not admin.
// Kept available although no route currently needs it — registration only
// ever produces admin accounts.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return domain.ErrNoToken
			}
			if !principal.IsAdmin() {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
