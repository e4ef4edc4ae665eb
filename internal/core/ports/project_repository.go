package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ProjectFilter narrows List results. Nil fields are ignored.
type ProjectFilter struct {
	Status      string
	Featured    *bool
	IsPublished *bool
}

// ProjectRepository defines project persistence. List returns projects
// ordered by order_index ascending.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectUpdate is a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Title           *string
	Description     *string
	FullDescription *string
	MyRole          *string
	Image           *string
	Tags            *[]string
	Link            *string
	GitHub          *string
	DemoVideo       *string
	Status          *domain.ProjectStatus
	Featured        *bool
	OrderIndex      *int
	IsPublished     *bool
}
