package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"designdesk/internal/domain"
)

// MockIRNAuditRepo is a mock implementation of port.IRNAuditRepository.
type MockIRNAuditRepo struct {
	mock.Mock
}

func (m *MockIRNAuditRepo) Append(ctx context.Context, entry *domain.IRNAuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockIRNAuditRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID, offset, limit int) ([]domain.IRNAuditEntry, int, error) {
	args := m.Called(ctx, invoiceID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.IRNAuditEntry), args.Int(1), args.Error(2)
}
