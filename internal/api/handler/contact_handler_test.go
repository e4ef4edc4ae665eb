package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type stubContactService struct {
	submitFn func(ctx context.Context, in ports.CreateContactInput) (*domain.ContactMessage, error)
	listFn   func(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, error)
	getFn    func(ctx context.Context, id string) (*domain.ContactMessage, error)
	markFn   func(ctx context.Context, id string, read bool) (*domain.ContactMessage, error)
	deleteFn func(ctx context.Context, id string) error
	statsFn  func(ctx context.Context) (*domain.ContactStats, error)
}

func (s *stubContactService) Submit(ctx context.Context, in ports.CreateContactInput) (*domain.ContactMessage, error) {
	return s.submitFn(ctx, in)
}

func (s *stubContactService) List(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubContactService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.getFn(ctx, id)
}

func (s *stubContactService) MarkRead(ctx context.Context, id string, read bool) (*domain.ContactMessage, error) {
	return s.markFn(ctx, id, read)
}

func (s *stubContactService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubContactService) Stats(ctx context.Context) (*domain.ContactStats, error) {
	return s.statsFn(ctx)
}

func TestContactHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		submitFn: func(ctx context.Context, in ports.CreateContactInput) (*domain.ContactMessage, error) {
			if in.Name != "Visitor" || in.Email != "visitor@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.ContactMessage{ID: "msg_1", Name: in.Name, Email: in.Email, Message: in.Message}, nil
		},
	}
	handler := NewContactHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"Visitor","email":"visitor@example.com","message":"Hello there"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Message sent successfully! I will get back to you soon." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestContactHandler_Create_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		submitFn: func(ctx context.Context, in ports.CreateContactInput) (*domain.ContactMessage, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewContactHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/contact",
		`{"name":"Visitor","message":"Hello there"}`)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestContactHandler_List_ReturnsUnreadCount(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		listFn: func(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, error) {
			return []domain.ContactMessage{
				{ID: "msg_1", IsRead: true},
				{ID: "msg_2"},
				{ID: "msg_3"},
			}, nil
		},
	}
	handler := NewContactHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(3) {
		t.Fatalf("expected count 3, got %v", resp["count"])
	}
	if resp["unread"] != float64(2) {
		t.Fatalf("expected unread 2, got %v", resp["unread"])
	}
}

func TestContactHandler_List_ReadFilterForwarded(t *testing.T) {
	e := newTestEcho()
	var got *bool
	stub := &stubContactService{
		listFn: func(ctx context.Context, filter ports.ContactFilter) ([]domain.ContactMessage, error) {
			got = filter.IsRead
			return nil, nil
		},
	}
	handler := NewContactHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/contact?is_read=false", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got == nil || *got != false {
		t.Fatalf("expected is_read=false forwarded, got %v", got)
	}
}

func TestContactHandler_MarkRead(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		markFn: func(ctx context.Context, id string, read bool) (*domain.ContactMessage, error) {
			if id != "msg_1" || !read {
				t.Fatalf("unexpected args: %s %v", id, read)
			}
			return &domain.ContactMessage{ID: id, IsRead: true}, nil
		},
	}
	handler := NewContactHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/msg_1/mark-read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("msg_1")

	if err := handler.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		getFn: func(ctx context.Context, id string) (*domain.ContactMessage, error) {
			return nil, domain.ErrContactMessageNotFound
		},
	}
	handler := NewContactHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrContactMessageNotFound) {
		t.Fatalf("expected ErrContactMessageNotFound, got %v", err)
	}
}

func TestContactHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		statsFn: func(ctx context.Context) (*domain.ContactStats, error) {
			return &domain.ContactStats{Total: 5, Read: 2, Unread: 3}, nil
		},
	}
	handler := NewContactHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/stats/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["total"] != float64(5) || data["unread"] != float64(3) {
		t.Fatalf("unexpected stats payload: %+v", resp["data"])
	}
}
