package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"designdesk/internal/port"
)

// MockHSNRepo is a mock implementation of port.HSNRepository.
type MockHSNRepo struct {
	mock.Mock
}

func (m *MockHSNRepo) ListAll(ctx context.Context) ([]port.HSNEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.HSNEntry), args.Error(1)
}
