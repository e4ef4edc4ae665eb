package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

func newMultipartContext(t *testing.T, e *echo.Echo, target, field string, filenames ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, name := range filenames {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write([]byte{0x89, 'P', 'N', 'G'}); err != nil {
			t.Fatalf("write payload: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadHandler_Multiple_StoresEveryFile(t *testing.T) {
	e := newTestEcho()

	var stored []string
	stub := &stubUploadService{
		imageFn: func(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
			stored = append(stored, in.Filename)
			return &ports.StoredObject{
				URL:         "https://cdn.example.com/portfolio/" + in.Filename,
				Key:         "portfolio/" + in.Filename,
				Size:        int64(len(in.Data)),
				ContentType: in.ContentType,
			}, nil
		},
	}
	handler := NewUploadHandler(stub)

	c, rec := newMultipartContext(t, e, "/api/upload/multiple", "images", "one.png", "two.png")
	if err := handler.Multiple(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stored) != 2 || stored[0] != "one.png" || stored[1] != "two.png" {
		t.Fatalf("unexpected stored files: %v", stored)
	}

	var resp struct {
		Count int          `json:"count"`
		Data  []uploadData `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUploadHandler_Multiple_NoFiles(t *testing.T) {
	e := newTestEcho()
	handler := NewUploadHandler(&stubUploadService{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("note", "no files here")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload/multiple", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Multiple(c); err != domain.ErrNoFile {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}

func TestUploadHandler_Multiple_StopsAtFirstStoreError(t *testing.T) {
	e := newTestEcho()

	calls := 0
	stub := &stubUploadService{
		imageFn: func(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
			calls++
			if in.Filename == "bad.exe" {
				return nil, domain.ErrUnsupportedImage
			}
			return &ports.StoredObject{URL: "u", Key: "k"}, nil
		},
	}
	handler := NewUploadHandler(stub)

	c, _ := newMultipartContext(t, e, "/api/upload/multiple", "images", "one.png", "bad.exe", "three.png")
	if err := handler.Multiple(c); err != domain.ErrUnsupportedImage {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("batch must stop at the failing file, got %d calls", calls)
	}
}

func TestUploadHandler_ProjectImage(t *testing.T) {
	e := newTestEcho()
	stub := &stubUploadService{
		projectFn: func(ctx context.Context, in ports.UploadInput) (*ports.StoredObject, error) {
			if in.Filename != "cover.png" {
				t.Fatalf("unexpected filename: %s", in.Filename)
			}
			return &ports.StoredObject{
				URL:         "https://cdn.example.com/portfolio/projects/cover.png",
				Key:         "portfolio/projects/cover.png",
				Size:        int64(len(in.Data)),
				ContentType: in.ContentType,
			}, nil
		},
	}
	handler := NewUploadHandler(stub)

	c, rec := newMultipartContext(t, e, "/api/upload/project-image", "image", "cover.png")
	if err := handler.ProjectImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Project image uploaded successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUploadHandler_ProjectImage_MissingFile(t *testing.T) {
	e := newTestEcho()
	handler := NewUploadHandler(&stubUploadService{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload/project-image", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ProjectImage(c); err != domain.ErrNoFile {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}
