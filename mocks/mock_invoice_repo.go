package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"designdesk/internal/domain"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, inv, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLineItem), args.Error(1)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, invoiceID, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) MarkIRNGenerated(ctx context.Context, id uuid.UUID, irn, ackNumber string, ackDate, generatedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, irn, ackNumber, ackDate, generatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepo) MarkIRNCancelled(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) (bool, error) {
	args := m.Called(ctx, id, reason, cancelledAt)
	return args.Bool(0), args.Error(1)
}
