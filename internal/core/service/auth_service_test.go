package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, TokenConfig{Secret: testSecret, TTL: time.Hour, Grace: time.Hour})
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "alice", "longenough")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "longenough" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["username"] != "alice" {
		t.Fatalf("expected username alice, got %v", claims["username"])
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "bob", "longenough"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "otherpass1"); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "carol", "s3cretpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "dave", "goodpass12")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "ghost", "whatever1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Verify_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "erin", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "erin" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Register(context.Background(), "frank", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	svc.now = time.Now

	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, _, err := svc.Register(context.Background(), "gina", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	other := NewAuthService(repo, TokenConfig{Secret: "another-secret-another-secret-12", TTL: time.Hour})
	if _, err := other.Verify(token); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Verify("not.a.token"); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuthService_Refresh_WithinGrace(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	// Token issued at t0 with a 1h TTL expires at t0+1h; the 1h grace keeps
	// it refreshable until t0+2h inclusive.
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, user, err := svc.Register(context.Background(), "henry", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2*time.Hour - time.Second) }
	fresh, refreshed, err := svc.Refresh(context.Background(), token)
	if err != nil {
		t.Fatalf("refresh one second before the grace cutoff failed: %v", err)
	}
	if refreshed.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, refreshed.ID)
	}

	claims, err := decodeIgnoringExpiry(fresh, testSecret)
	if err != nil {
		t.Fatalf("refreshed token does not decode: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("refreshed token carries user %s, want %s", claims.UserID, user.ID)
	}
	if !claims.ExpiresAt.Time.Equal(issued.Add(3*time.Hour - time.Second)) {
		t.Fatalf("fresh token must expire one TTL after the refresh, got %v", claims.ExpiresAt.Time)
	}
}

func TestAuthService_Refresh_AtGraceCutoff(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	// Exactly the full grace past exp still refreshes; rejection starts
	// strictly beyond it.
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.Register(context.Background(), "helen", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, _, err := svc.Refresh(context.Background(), token); err != nil {
		t.Fatalf("refresh exactly at the grace cutoff failed: %v", err)
	}
}

func TestAuthService_Refresh_BeyondGrace(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	// One second past the grace cutoff.
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.Register(context.Background(), "iris", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2*time.Hour + time.Second) }
	if _, _, err := svc.Refresh(context.Background(), token); err != domain.ErrGraceExpired {
		t.Fatalf("expected ErrGraceExpired, got %v", err)
	}
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "judy", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	delete(repo.users, user.ID)

	if _, _, err := svc.Refresh(context.Background(), token); err != domain.ErrPrincipalNotFound {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestAuthService_Refresh_BadSignature(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, _, err := svc.Register(context.Background(), "kate", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	other := NewAuthService(repo, TokenConfig{Secret: "another-secret-another-secret-12", TTL: time.Hour})
	if _, _, err := other.Refresh(context.Background(), token); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuthService_Refresh_ReflectsCurrentRecord(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "liam", "longenough")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users[user.ID].Username = "liam-renamed"

	fresh, _, err := svc.Refresh(context.Background(), token)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	claims, err := svc.Verify(fresh)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username != "liam-renamed" {
		t.Fatalf("expected refreshed claims to carry the current username, got %s", claims.Username)
	}
}
