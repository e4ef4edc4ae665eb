package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// UploadHandler handles image uploads: general/project images to object
// storage, skill icons to the local public directory.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadData struct {
	URL         string `json:"url"`
	Key         string `json:"key,omitempty"`
	Filename    string `json:"filename,omitempty"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Image handles POST /api/upload — a single image, field name "image".
//
// @Summary      Upload an image to object storage
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Image(c echo.Context) error {
	in, err := formUpload(c, "image")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
		return err
	}

	stored, err := h.service.UploadImage(c.Request().Context(), in)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("image", "ok").Inc()
	return respond(c, http.StatusOK, "Image uploaded successfully", uploadData{
		URL:         stored.URL,
		Key:         stored.Key,
		Size:        stored.Size,
		ContentType: stored.ContentType,
	})
}

// Multiple handles POST /api/upload/multiple — any number of files under the
// "images" field. All files are buffered and size-checked before the first
// store write; a store failure stops the batch at the first error.
//
// @Summary      Upload several images to object storage
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/upload/multiple [post]
func (h *UploadHandler) Multiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
		return domain.ErrNoFile
	}
	files := form.File["images"]
	if len(files) == 0 {
		metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
		return domain.ErrNoFile
	}

	inputs := make([]ports.UploadInput, 0, len(files))
	for _, fh := range files {
		in, err := readUpload(fh)
		if err != nil {
			metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
			return err
		}
		inputs = append(inputs, in)
	}

	stored := make([]uploadData, 0, len(inputs))
	for _, in := range inputs {
		obj, err := h.service.UploadImage(c.Request().Context(), in)
		if err != nil {
			metrics.UploadsTotal.WithLabelValues("image", "rejected").Inc()
			return err
		}
		metrics.UploadsTotal.WithLabelValues("image", "ok").Inc()
		stored = append(stored, uploadData{
			URL:         obj.URL,
			Key:         obj.Key,
			Size:        obj.Size,
			ContentType: obj.ContentType,
		})
	}
	return respondList(c, len(stored), stored)
}

// ProjectImage handles POST /api/upload/project-image — field name "image",
// stored under the project folder in object storage.
//
// @Summary      Upload a project image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/upload/project-image [post]
func (h *UploadHandler) ProjectImage(c echo.Context) error {
	in, err := formUpload(c, "image")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("project_image", "rejected").Inc()
		return err
	}

	stored, err := h.service.UploadProjectImage(c.Request().Context(), in)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("project_image", "rejected").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("project_image", "ok").Inc()
	return respond(c, http.StatusOK, "Project image uploaded successfully", uploadData{
		URL:         stored.URL,
		Key:         stored.Key,
		Size:        stored.Size,
		ContentType: stored.ContentType,
	})
}

// SkillIcon handles POST /api/upload/skill-icon — field name "icon", written
// to the local public dir so the site serves it directly.
//
// @Summary      Upload a skill icon
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/upload/skill-icon [post]
func (h *UploadHandler) SkillIcon(c echo.Context) error {
	in, err := formUpload(c, "icon")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("icon", "rejected").Inc()
		return err
	}

	stored, err := h.service.UploadSkillIcon(c.Request().Context(), in)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("icon", "rejected").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("icon", "ok").Inc()
	return respond(c, http.StatusOK, "Skill icon uploaded successfully", uploadData{
		URL:         stored.URL,
		Filename:    stored.Key,
		Size:        stored.Size,
		ContentType: stored.ContentType,
	})
}

// formUpload extracts the named file from the multipart form.
func formUpload(c echo.Context, field string) (ports.UploadInput, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return ports.UploadInput{}, domain.ErrNoFile
	}
	return readUpload(fh)
}

// readUpload buffers a multipart file into an UploadInput. The size cap is
// checked against the declared size before reading to avoid buffering
// oversized payloads.
func readUpload(fh *multipart.FileHeader) (ports.UploadInput, error) {
	if fh.Size > service.MaxUploadBytes {
		return ports.UploadInput{}, domain.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return ports.UploadInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxUploadBytes+1))
	if err != nil {
		return ports.UploadInput{}, err
	}
	if int64(len(data)) > service.MaxUploadBytes {
		return ports.UploadInput{}, domain.ErrImageTooLarge
	}

	return ports.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
