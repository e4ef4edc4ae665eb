package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CreateProjectInput carries the fields accepted when creating a project.
// Status defaults to "completed" when empty.
type CreateProjectInput struct {
	Title           string
	Description     string
	FullDescription string
	MyRole          string
	Image           string
	Tags            []string
	Link            string
	GitHub          string
	DemoVideo       string
	Status          domain.ProjectStatus
	Featured        *bool
	OrderIndex      *int
	IsPublished     *bool
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error)
	// TogglePublish flips the published flag and returns the updated project.
	TogglePublish(ctx context.Context, id string) (*domain.Project, error)
	// ToggleFeatured flips the featured flag and returns the updated project.
	ToggleFeatured(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
