package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// SkillHandler handles HTTP requests for skill resources.
type SkillHandler struct {
	service ports.SkillService
	uploads ports.UploadService
}

func NewSkillHandler(service ports.SkillService, uploads ports.UploadService) *SkillHandler {
	return &SkillHandler{service: service, uploads: uploads}
}

type createSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Level       int    `json:"level" validate:"gte=0,lte=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Icon        string `json:"icon" validate:"omitempty,max=500"`
	OrderIndex  *int   `json:"order_index"`
	IsPublished *bool  `json:"is_published"`
}

type updateSkillRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Level       *int    `json:"level" validate:"omitempty,gte=0,lte=100"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=50"`
	Icon        *string `json:"icon" validate:"omitempty,max=500"`
	OrderIndex  *int    `json:"order_index"`
	IsPublished *bool   `json:"is_published"`
}

// List handles GET /api/skills.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        category      query     string  false  "Filter by category"
// @Param        is_published  query     bool    false  "Filter by published flag"
// @Success      200           {object}  listResponse
// @Router       /api/skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	filter := ports.SkillFilter{
		Category:    c.QueryParam("category"),
		IsPublished: boolQueryParam(c, "is_published"),
	}

	skills, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondList(c, len(skills), skills)
}

// Get handles GET /api/skills/:id.
//
// @Summary      Get a skill by id
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/skills/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", skill)
}

// Create handles POST /api/skills.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSkillRequest  true  "Skill"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req createSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.Create(c.Request().Context(), ports.CreateSkillInput{
		Name:        req.Name,
		Level:       req.Level,
		Category:    req.Category,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Skill created successfully", skill)
}

// CreateWithIcon handles POST /api/skills/with-icon — a multipart form with
// the skill fields plus an optional icon file, stored in the local icon dir.
//
// @Summary      Create a skill with an uploaded icon
// @Tags         skills
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/skills/with-icon [post]
func (h *SkillHandler) CreateWithIcon(c echo.Context) error {
	level, err := strconv.Atoi(c.FormValue("level"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "level must be a number")
	}

	req := createSkillRequest{
		Name:     c.FormValue("name"),
		Level:    level,
		Category: c.FormValue("category"),
	}
	if v := c.FormValue("order_index"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "order_index must be a number")
		}
		req.OrderIndex = &idx
	}
	if v := c.FormValue("is_published"); v != "" {
		published := v == "true"
		req.IsPublished = &published
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if file, err := c.FormFile("icon"); err == nil {
		upload, err := readUpload(file)
		if err != nil {
			return err
		}
		stored, err := h.uploads.UploadSkillIcon(c.Request().Context(), upload)
		if err != nil {
			return err
		}
		req.Icon = stored.URL
	}

	skill, err := h.service.Create(c.Request().Context(), ports.CreateSkillInput{
		Name:        req.Name,
		Level:       req.Level,
		Category:    req.Category,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Skill created successfully", skill)
}

// Update handles PUT /api/skills/:id.
//
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Skill id"
// @Param        body  body      updateSkillRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	var req updateSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SkillUpdate{
		Name:        req.Name,
		Level:       req.Level,
		Category:    req.Category,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skill updated successfully", skill)
}

// UpdateWithIcon handles PUT /api/skills/:id/with-icon — a multipart form
// where every field is optional and a new icon file replaces the stored one.
//
// @Summary      Update a skill, optionally replacing its icon
// @Tags         skills
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/skills/{id}/with-icon [put]
func (h *SkillHandler) UpdateWithIcon(c echo.Context) error {
	var update ports.SkillUpdate
	if v := c.FormValue("name"); v != "" {
		update.Name = &v
	}
	if v := c.FormValue("category"); v != "" {
		update.Category = &v
	}
	if v := c.FormValue("level"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 0 || level > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "level must be a number between 0 and 100")
		}
		update.Level = &level
	}
	if v := c.FormValue("order_index"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "order_index must be a number")
		}
		update.OrderIndex = &idx
	}
	if v := c.FormValue("is_published"); v != "" {
		published := v == "true"
		update.IsPublished = &published
	}

	if file, err := c.FormFile("icon"); err == nil {
		upload, err := readUpload(file)
		if err != nil {
			return err
		}
		stored, err := h.uploads.UploadSkillIcon(c.Request().Context(), upload)
		if err != nil {
			return err
		}
		update.Icon = &stored.URL
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skill updated successfully", skill)
}

// TogglePublish handles PATCH /api/skills/:id/toggle-publish.
//
// @Summary      Toggle a skill's published flag
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/skills/{id}/toggle-publish [patch]
func (h *SkillHandler) TogglePublish(c echo.Context) error {
	skill, err := h.service.TogglePublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, publishToggleMessage(skill.IsPublished), skill)
}

// publishToggleMessage names the new state, shared by all toggle endpoints.
func publishToggleMessage(published bool) string {
	if published {
		return "Published successfully"
	}
	return "Unpublished successfully"
}

// Delete handles DELETE /api/skills/:id.
//
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Skill deleted successfully", nil)
}

// boolQueryParam parses an optional "true"/"false" query parameter; any other
// value is treated as absent.
func boolQueryParam(c echo.Context, name string) *bool {
	switch c.QueryParam(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
