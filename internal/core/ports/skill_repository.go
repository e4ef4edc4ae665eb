package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// SkillFilter narrows List results. Nil fields are ignored.
type SkillFilter struct {
	Category    string
	IsPublished *bool
}

// SkillRepository defines skill persistence. List returns skills ordered by
// order_index ascending.
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
	Update(ctx context.Context, id string, update SkillUpdate) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// SkillUpdate is a partial update; nil fields are left untouched.
type SkillUpdate struct {
	Name        *string
	Level       *int
	Category    *string
	Icon        *string
	OrderIndex  *int
	IsPublished *bool
}
