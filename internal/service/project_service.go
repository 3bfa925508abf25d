package service

import (
	"context"

	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

// ProjectService defines the project management contract.
type ProjectService interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Project, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo       port.ProjectRepository
	clientRepo port.ClientRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(repo port.ProjectRepository, clientRepo port.ClientRepository) ProjectService {
	return &projectService{repo: repo, clientRepo: clientRepo}
}

func (s *projectService) Create(ctx context.Context, project *domain.Project) error {
	// Reject projects for unknown clients up front.
	if _, err := s.clientRepo.GetByID(ctx, project.ClientID); err != nil {
		return err
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusPlanning
	}
	return s.repo.Create(ctx, project)
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Project, int, error) {
	return s.repo.ListByClient(ctx, clientID, offset, limit)
}

func (s *projectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *projectService) Update(ctx context.Context, project *domain.Project) error {
	return s.repo.Update(ctx, project)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
