package service

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ProjectService implements project CRUD on top of the repository.
type ProjectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	status := in.Status
	if status == "" {
		status = domain.ProjectCompleted
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:           in.Title,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		MyRole:          in.MyRole,
		Image:           in.Image,
		Tags:            in.Tags,
		Link:            in.Link,
		GitHub:          in.GitHub,
		DemoVideo:       in.DemoVideo,
		Status:          status,
		Featured:        boolOrDefault(in.Featured, false),
		OrderIndex:      intOrDefault(in.OrderIndex, 0),
		IsPublished:     boolOrDefault(in.IsPublished, true),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return s.repo.Create(ctx, project)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) Update(ctx context.Context, id string, update ports.ProjectUpdate) (*domain.Project, error) {
	return s.repo.Update(ctx, id, update)
}

// TogglePublish flips the published flag by reading the current value and
// writing back its inverse.
func (s *ProjectService) TogglePublish(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	published := !project.IsPublished
	return s.repo.Update(ctx, id, ports.ProjectUpdate{IsPublished: &published})
}

// ToggleFeatured flips the featured flag the same way.
func (s *ProjectService) ToggleFeatured(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	featured := !project.Featured
	return s.repo.Update(ctx, id, ports.ProjectUpdate{Featured: &featured})
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
