package service

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ExperienceService implements experience CRUD on top of the repository.
type ExperienceService struct {
	repo ports.ExperienceRepository
}

func NewExperienceService(repo ports.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) Create(ctx context.Context, in ports.CreateExperienceInput) (*domain.Experience, error) {
	now := time.Now().UTC()
	exp := &domain.Experience{
		Role:        in.Role,
		Company:     in.Company,
		Period:      in.Period,
		Description: in.Description,
		CompanyLogo: in.CompanyLogo,
		Location:    in.Location,
		OrderIndex:  intOrDefault(in.OrderIndex, 0),
		IsPublished: boolOrDefault(in.IsPublished, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, exp)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExperienceService) List(ctx context.Context, filter ports.ExperienceFilter) ([]domain.Experience, error) {
	return s.repo.List(ctx, filter)
}

func (s *ExperienceService) Update(ctx context.Context, id string, update ports.ExperienceUpdate) (*domain.Experience, error) {
	return s.repo.Update(ctx, id, update)
}

// TogglePublish flips the published flag by reading the current value and
// writing back its inverse.
func (s *ExperienceService) TogglePublish(ctx context.Context, id string) (*domain.Experience, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	published := !exp.IsPublished
	return s.repo.Update(ctx, id, ports.ExperienceUpdate{IsPublished: &published})
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
