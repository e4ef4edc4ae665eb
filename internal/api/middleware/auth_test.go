package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.Claims
	err    error
	token  string
}

func (v *stubVerifier) Verify(token string) (*domain.Claims, error) {
	v.token = token
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func testClaims(expiresIn time.Duration) *domain.Claims {
	return &domain.Claims{
		UserID:   "user_1",
		Username: "alice",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func newAuthContext(e *echo.Echo, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{claims: testClaims(time.Hour)}
	c, rec := newAuthContext(e, "Bearer sometoken")

	called := false
	handler := Authenticate(verifier)(func(c echo.Context) error {
		called = true
		principal, ok := c.Get(PrincipalKey).(domain.Principal)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if principal.ID != "user_1" || principal.Username != "alice" || !principal.IsAdmin() {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if verifier.token != "sometoken" {
		t.Fatalf("verifier received %q", verifier.token)
	}
	if rec.Header().Get(HeaderTokenExpiresSoon) != "" {
		t.Fatalf("expiry headers must not be set for a fresh token")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, "")

	handler := Authenticate(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	e := echo.New()
	c, _ := newAuthContext(e, "Token abc")

	handler := Authenticate(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthenticate_VerifierFailure(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{err: domain.ErrTokenExpired}
	c, _ := newAuthContext(e, "Bearer expiredtoken")

	handler := Authenticate(verifier)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthenticate_ExpiringSoonHeaders(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{claims: testClaims(2 * time.Minute)}
	c, rec := newAuthContext(e, "Bearer sometoken")

	handler := Authenticate(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Header().Get(HeaderTokenExpiresSoon) != "true" {
		t.Fatalf("expected %s header", HeaderTokenExpiresSoon)
	}
	if rec.Header().Get(HeaderTokenExpiresIn) == "" {
		t.Fatalf("expected %s header", HeaderTokenExpiresIn)
	}
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	c, _ := newAuthContext(e, "Bearer abc123")
	token, err := BearerToken(c)
	if err != nil || token != "abc123" {
		t.Fatalf("unexpected result: %q, %v", token, err)
	}

	c, _ = newAuthContext(e, "Bearer ")
	if _, err := BearerToken(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken for empty token, got %v", err)
	}
}
