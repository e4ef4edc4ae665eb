package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CreateSkillInput carries the fields accepted when creating a skill.
// Optional flags default to order_index 0 / is_published true when nil.
type CreateSkillInput struct {
	Name        string
	Level       int
	Category    string
	Icon        string
	OrderIndex  *int
	IsPublished *bool
}

type SkillService interface {
	Create(ctx context.Context, in CreateSkillInput) (*domain.Skill, error)
	Get(ctx context.Context, id string) (*domain.Skill, error)
	List(ctx context.Context, filter SkillFilter) ([]domain.Skill, error)
	Update(ctx context.Context, id string, update SkillUpdate) (*domain.Skill, error)
	// TogglePublish flips the published flag and returns the updated skill.
	TogglePublish(ctx context.Context, id string) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
