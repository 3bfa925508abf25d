package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"designdesk/internal/einvoice"
)

// MockAuthorityClient is a mock implementation of einvoice.AuthorityClient.
type MockAuthorityClient struct {
	mock.Mock
}

func (m *MockAuthorityClient) Submit(ctx context.Context, payload *einvoice.Payload) (*einvoice.SubmitResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*einvoice.SubmitResult), args.Error(1)
}

func (m *MockAuthorityClient) Cancel(ctx context.Context, irn, reasonCode, remark string) (*einvoice.CancelResult, error) {
	args := m.Called(ctx, irn, reasonCode, remark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*einvoice.CancelResult), args.Error(1)
}
