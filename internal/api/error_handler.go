package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain auth/resource errors to their fixed HTTP statuses and
//     client-facing messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status":"error","message":"..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Status: "error", Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Auth failures carry fixed messages; these are part of the client
	// compatibility surface.
	switch {
	case errors.Is(err, domain.ErrNoToken):
		return http.StatusUnauthorized, "No token provided. Please login to access this resource."
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired. Please refresh your token or login again."
	case errors.Is(err, domain.ErrTokenMalformed):
		return http.StatusUnauthorized, "Invalid token. Please login again."
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Authentication failed"
	case errors.Is(err, domain.ErrGraceExpired):
		return http.StatusUnauthorized, "Token expired beyond grace period. Please login again."
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusUnauthorized, "User not found. Please login again."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Username already taken"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	}

	// Upload rejections.
	switch {
	case errors.Is(err, domain.ErrNoFile):
		return http.StatusBadRequest, "Please upload an image"
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusBadRequest, "File size is too large. Maximum size is 5MB"
	case errors.Is(err, domain.ErrUnsupportedImage):
		return http.StatusBadRequest, "Only image files are allowed (jpeg, jpg, png, gif, webp, svg)"
	}

	// Resource lookups.
	switch {
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusNotFound, "Skill not found"
	case errors.Is(err, domain.ErrExperienceNotFound):
		return http.StatusNotFound, "Experience not found"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "Project not found"
	case errors.Is(err, domain.ErrContactMessageNotFound):
		return http.StatusNotFound, "Contact message not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong!"
}
