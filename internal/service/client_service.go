package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/gst"
	"designdesk/internal/port"
)

// ClientService defines the client management contract.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo      port.ClientRepository
	validator *gst.Validator
}

// NewClientService creates a new ClientService implementation.
func NewClientService(repo port.ClientRepository, validator *gst.Validator) ClientService {
	return &clientService{repo: repo, validator: validator}
}

// checkIdentity validates the GST-relevant fields. GSTIN is optional but must
// be well-formed when present, and its state prefix must match the client's
// state code.
func (s *clientService) checkIdentity(client *domain.Client) error {
	if res := s.validator.ValidateStateCode(client.StateCode); !res.Valid {
		return fmt.Errorf("state code: %s", res.Reason)
	}
	if client.GSTIN == "" {
		return nil
	}
	res := s.validator.ValidateGSTIN(client.GSTIN)
	if !res.Valid {
		return fmt.Errorf("gstin: %s", res.Reason)
	}
	if res.Parts.StateCode != client.StateCode {
		return fmt.Errorf("gstin: state prefix %s does not match state code %s", res.Parts.StateCode, client.StateCode)
	}
	client.GSTIN = res.Normalized
	return nil
}

func (s *clientService) Create(ctx context.Context, client *domain.Client) error {
	if err := s.checkIdentity(client); err != nil {
		return err
	}
	return s.repo.Create(ctx, client)
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, offset, limit int) ([]domain.Client, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *clientService) Update(ctx context.Context, client *domain.Client) error {
	if err := s.checkIdentity(client); err != nil {
		return err
	}
	return s.repo.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
