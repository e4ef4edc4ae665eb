package service

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// SkillService implements skill CRUD on top of the repository.
type SkillService struct {
	repo ports.SkillRepository
}

func NewSkillService(repo ports.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) Create(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
	now := time.Now().UTC()
	skill := &domain.Skill{
		Name:        in.Name,
		Level:       in.Level,
		Category:    in.Category,
		Icon:        in.Icon,
		OrderIndex:  intOrDefault(in.OrderIndex, 0),
		IsPublished: boolOrDefault(in.IsPublished, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, skill)
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SkillService) List(ctx context.Context, filter ports.SkillFilter) ([]domain.Skill, error) {
	return s.repo.List(ctx, filter)
}

func (s *SkillService) Update(ctx context.Context, id string, update ports.SkillUpdate) (*domain.Skill, error) {
	return s.repo.Update(ctx, id, update)
}

// TogglePublish flips the published flag by reading the current value and
// writing back its inverse.
func (s *SkillService) TogglePublish(ctx context.Context, id string) (*domain.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	published := !skill.IsPublished
	return s.repo.Update(ctx, id, ports.SkillUpdate{IsPublished: &published})
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
