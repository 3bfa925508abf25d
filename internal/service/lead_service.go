package service

import (
	"context"

	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

// LeadService defines the lead capture and pipeline contract.
type LeadService interface {
	Capture(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus, offset, limit int) ([]domain.Lead, int, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type leadService struct {
	repo port.LeadRepository
}

// NewLeadService creates a new LeadService implementation.
func NewLeadService(repo port.LeadRepository) LeadService {
	return &leadService{repo: repo}
}

func (s *leadService) Capture(ctx context.Context, lead *domain.Lead) error {
	lead.Status = domain.LeadStatusNew
	return s.repo.Create(ctx, lead)
}

func (s *leadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *leadService) List(ctx context.Context, status *domain.LeadStatus, offset, limit int) ([]domain.Lead, int, error) {
	return s.repo.List(ctx, status, offset, limit)
}

func (s *leadService) Update(ctx context.Context, lead *domain.Lead) error {
	return s.repo.Update(ctx, lead)
}

func (s *leadService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
