package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project resources.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"required"`
	FullDescription string   `json:"full_description" validate:"required"`
	MyRole          string   `json:"my_role" validate:"required"`
	Image           string   `json:"image" validate:"required,url"`
	Tags            []string `json:"tags" validate:"required,min=1"`
	Link            string   `json:"link" validate:"omitempty,url"`
	GitHub          string   `json:"github" validate:"omitempty,url"`
	DemoVideo       string   `json:"demo_video" validate:"omitempty,url"`
	Status          string   `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	Featured        *bool    `json:"featured"`
	OrderIndex      *int     `json:"order_index"`
	IsPublished     *bool    `json:"is_published"`
}

type updateProjectRequest struct {
	Title           *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string   `json:"description" validate:"omitempty,min=1"`
	FullDescription *string   `json:"full_description" validate:"omitempty,min=1"`
	MyRole          *string   `json:"my_role" validate:"omitempty,min=1"`
	Image           *string   `json:"image" validate:"omitempty,url"`
	Tags            *[]string `json:"tags" validate:"omitempty,min=1"`
	Link            *string   `json:"link" validate:"omitempty,url"`
	GitHub          *string   `json:"github" validate:"omitempty,url"`
	DemoVideo       *string   `json:"demo_video" validate:"omitempty,url"`
	Status          *string   `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	Featured        *bool     `json:"featured"`
	OrderIndex      *int      `json:"order_index"`
	IsPublished     *bool     `json:"is_published"`
}

// List handles GET /api/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        status        query     string  false  "Filter by status"
// @Param        featured      query     bool    false  "Filter by featured flag"
// @Param        is_published  query     bool    false  "Filter by published flag"
// @Success      200           {object}  listResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	filter := ports.ProjectFilter{
		Status:      c.QueryParam("status"),
		Featured:    boolQueryParam(c, "featured"),
		IsPublished: boolQueryParam(c, "is_published"),
	}

	projects, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondList(c, len(projects), projects)
}

// Get handles GET /api/projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", project)
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		MyRole:          req.MyRole,
		Image:           req.Image,
		Tags:            req.Tags,
		Link:            req.Link,
		GitHub:          req.GitHub,
		DemoVideo:       req.DemoVideo,
		Status:          domain.ProjectStatus(req.Status),
		Featured:        req.Featured,
		OrderIndex:      req.OrderIndex,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Project created successfully", project)
}

// Update handles PUT /api/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.ProjectStatus
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		status = &s
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProjectUpdate{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		MyRole:          req.MyRole,
		Image:           req.Image,
		Tags:            req.Tags,
		Link:            req.Link,
		GitHub:          req.GitHub,
		DemoVideo:       req.DemoVideo,
		Status:          status,
		Featured:        req.Featured,
		OrderIndex:      req.OrderIndex,
		IsPublished:     req.IsPublished,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project updated successfully", project)
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project deleted successfully", nil)
}

// TogglePublish handles PATCH /api/projects/:id/toggle-publish.
//
// @Summary      Toggle a project's published flag
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/toggle-publish [patch]
func (h *ProjectHandler) TogglePublish(c echo.Context) error {
	project, err := h.service.TogglePublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, publishToggleMessage(project.IsPublished), project)
}

// ToggleFeatured handles PATCH /api/projects/:id/toggle-featured.
//
// @Summary      Toggle a project's featured flag
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/toggle-featured [patch]
func (h *ProjectHandler) ToggleFeatured(c echo.Context) error {
	project, err := h.service.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	msg := "Project unfeatured successfully"
	if project.Featured {
		msg = "Project featured successfully"
	}
	return respond(c, http.StatusOK, msg, project)
}
