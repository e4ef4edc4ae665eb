package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// CreateExperienceInput carries the fields accepted when creating an
// experience entry.
type CreateExperienceInput struct {
	Role        string
	Company     string
	Period      string
	Description []string
	CompanyLogo string
	Location    string
	OrderIndex  *int
	IsPublished *bool
}

type ExperienceService interface {
	Create(ctx context.Context, in CreateExperienceInput) (*domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context, filter ExperienceFilter) ([]domain.Experience, error)
	Update(ctx context.Context, id string, update ExperienceUpdate) (*domain.Experience, error)
	// TogglePublish flips the published flag and returns the updated entry.
	TogglePublish(ctx context.Context, id string) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
