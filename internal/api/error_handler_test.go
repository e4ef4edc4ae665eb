package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_AuthErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrNoToken, http.StatusUnauthorized, "No token provided. Please login to access this resource."},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "Token has expired. Please refresh your token or login again."},
		{domain.ErrTokenMalformed, http.StatusUnauthorized, "Invalid token. Please login again."},
		{domain.ErrGraceExpired, http.StatusUnauthorized, "Token expired beyond grace period. Please login again."},
		{domain.ErrPrincipalNotFound, http.StatusUnauthorized, "User not found. Please login again."},
		{domain.ErrForbidden, http.StatusForbidden, "Admin access required"},
		{domain.ErrUsernameTaken, http.StatusConflict, "Username already taken"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["status"] != "error" {
			t.Fatalf("%v: expected error status, got %v", tc.err, body["status"])
		}
		if body["message"] != tc.message {
			t.Fatalf("%v: unexpected message %q", tc.err, body["message"])
		}
	}
}

func TestErrorHandler_UploadErrors(t *testing.T) {
	code, body := renderError(t, domain.ErrImageTooLarge)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["message"] != "File size is too large. Maximum size is 5MB" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_NotFoundErrors(t *testing.T) {
	cases := map[error]string{
		domain.ErrSkillNotFound:          "Skill not found",
		domain.ErrExperienceNotFound:     "Experience not found",
		domain.ErrProjectNotFound:        "Project not found",
		domain.ErrContactMessageNotFound: "Contact message not found",
	}

	for err, message := range cases {
		code, body := renderError(t, err)
		if code != http.StatusNotFound {
			t.Fatalf("%v: expected 404, got %d", err, code)
		}
		if body["message"] != message {
			t.Fatalf("%v: unexpected message %q", err, body["message"])
		}
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["message"] != "invalid payload" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "Something went wrong!" {
		t.Fatalf("internal details must not leak, got %v", body["message"])
	}
}
