package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ExperienceHandler handles HTTP requests for work-history entries.
type ExperienceHandler struct {
	service ports.ExperienceService
}

func NewExperienceHandler(service ports.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

type createExperienceRequest struct {
	Role        string   `json:"role" validate:"required,max=255"`
	Company     string   `json:"company" validate:"required,max=255"`
	Period      string   `json:"period" validate:"required,max=100"`
	Description []string `json:"description" validate:"required,min=1"`
	CompanyLogo string   `json:"company_logo" validate:"omitempty,url"`
	Location    string   `json:"location" validate:"omitempty,max=255"`
	OrderIndex  *int     `json:"order_index"`
	IsPublished *bool    `json:"is_published"`
}

type updateExperienceRequest struct {
	Role        *string   `json:"role" validate:"omitempty,min=1,max=255"`
	Company     *string   `json:"company" validate:"omitempty,min=1,max=255"`
	Period      *string   `json:"period" validate:"omitempty,min=1,max=100"`
	Description *[]string `json:"description" validate:"omitempty,min=1"`
	CompanyLogo *string   `json:"company_logo" validate:"omitempty,url"`
	Location    *string   `json:"location" validate:"omitempty,max=255"`
	OrderIndex  *int      `json:"order_index"`
	IsPublished *bool     `json:"is_published"`
}

// List handles GET /api/experiences.
//
// @Summary      List experiences
// @Tags         experiences
// @Produce      json
// @Param        is_published  query     bool  false  "Filter by published flag"
// @Success      200           {object}  listResponse
// @Router       /api/experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	filter := ports.ExperienceFilter{IsPublished: boolQueryParam(c, "is_published")}

	experiences, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondList(c, len(experiences), experiences)
}

// Get handles GET /api/experiences/:id.
//
// @Summary      Get an experience by id
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/experiences/{id} [get]
func (h *ExperienceHandler) Get(c echo.Context) error {
	exp, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", exp)
}

// Create handles POST /api/experiences.
//
// @Summary      Create an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExperienceRequest  true  "Experience"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/experiences [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req createExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exp, err := h.service.Create(c.Request().Context(), ports.CreateExperienceInput{
		Role:        req.Role,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
		CompanyLogo: req.CompanyLogo,
		Location:    req.Location,
		OrderIndex:  req.OrderIndex,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Experience created successfully", exp)
}

// Update handles PUT /api/experiences/:id.
//
// @Summary      Update an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Experience id"
// @Param        body  body      updateExperienceRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/experiences/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	var req updateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exp, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ExperienceUpdate{
		Role:        req.Role,
		Company:     req.Company,
		Period:      req.Period,
		Description: req.Description,
		CompanyLogo: req.CompanyLogo,
		Location:    req.Location,
		OrderIndex:  req.OrderIndex,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experience updated successfully", exp)
}

// Delete handles DELETE /api/experiences/:id.
//
// @Summary      Delete an experience
// @Tags         experiences
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Experience deleted successfully", nil)
}

// TogglePublish handles PATCH /api/experiences/:id/toggle-publish.
//
// @Summary      Toggle an experience's published flag
// @Tags         experiences
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/experiences/{id}/toggle-publish [patch]
func (h *ExperienceHandler) TogglePublish(c echo.Context) error {
	exp, err := h.service.TogglePublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, publishToggleMessage(exp.IsPublished), exp)
}
