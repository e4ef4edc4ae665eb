package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required"`
}

// List handles GET /api/contact — the admin inbox, newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Param        is_read  query     bool  false  "Filter by read flag"
// @Success      200      {object}  listResponse
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	filter := ports.ContactFilter{IsRead: boolQueryParam(c, "is_read")}

	messages, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}
	return c.JSON(http.StatusOK, listResponse{
		Status: "success",
		Count:  len(messages),
		Unread: &unread,
		Data:   messages,
	})
}

// Get handles GET /api/contact/:id.
//
// @Summary      Get a contact message by id
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	msg, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", msg)
}

// Create handles POST /api/contact — the public contact form. The message is
// persisted first; email notification is best-effort inside the service.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Message"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.ContactSubmissionsTotal.Inc()
	return respond(c, http.StatusCreated, "Message sent successfully! I will get back to you soon.", msg)
}

// MarkRead handles PATCH /api/contact/:id/mark-read.
//
// @Summary      Mark a contact message as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/{id}/mark-read [patch]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message marked as read", msg)
}

// MarkUnread handles PATCH /api/contact/:id/mark-unread.
//
// @Summary      Mark a contact message as unread
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/{id}/mark-unread [patch]
func (h *ContactHandler) MarkUnread(c echo.Context) error {
	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message marked as unread", msg)
}

// Delete handles DELETE /api/contact/:id.
//
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Contact message deleted successfully", nil)
}

// Stats handles GET /api/contact/stats/summary.
//
// @Summary      Contact inbox statistics
// @Tags         contact
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/contact/stats/summary [get]
func (h *ContactHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}
