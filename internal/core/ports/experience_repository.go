package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// ExperienceFilter narrows List results. Nil fields are ignored.
type ExperienceFilter struct {
	IsPublished *bool
}

// ExperienceRepository defines experience persistence. List returns entries
// ordered by order_index ascending.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context, filter ExperienceFilter) ([]domain.Experience, error)
	Update(ctx context.Context, id string, update ExperienceUpdate) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}

// ExperienceUpdate is a partial update; nil fields are left untouched.
type ExperienceUpdate struct {
	Role        *string
	Company     *string
	Period      *string
	Description *[]string
	CompanyLogo *string
	Location    *string
	OrderIndex  *int
	IsPublished *bool
}
