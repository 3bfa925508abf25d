package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"designdesk/internal/domain"
	"designdesk/internal/gst"
	"designdesk/internal/service"
	"designdesk/mocks"
)

func newClientService(repo *mocks.MockClientRepo) service.ClientService {
	return service.NewClientService(repo, gst.NewValidator(gst.NewStateRegistry()))
}

func TestClientService_Create_NormalizesGSTIN(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{
		Name:      "Sharma Retail LLP",
		GSTIN:     " 27aaacb1234c1z9 ",
		StateCode: "27",
	}
	repo.On("Create", mock.Anything, client).Return(nil)

	err := svc.Create(context.Background(), client)
	assert.NoError(t, err)
	assert.Equal(t, "27AAACB1234C1Z9", client.GSTIN)
	repo.AssertExpectations(t)
}

func TestClientService_Create_ConsumerWithoutGSTIN(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{Name: "Rao Residence", StateCode: "29"}
	repo.On("Create", mock.Anything, client).Return(nil)

	assert.NoError(t, svc.Create(context.Background(), client))
}

func TestClientService_Create_GSTINStateMismatch(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{
		Name:      "Sharma Retail LLP",
		GSTIN:     "27AAACB1234C1Z9",
		StateCode: "29",
	}

	err := svc.Create(context.Background(), client)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not match state code")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_Create_InvalidStateCode(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{Name: "Rao Residence", StateCode: "99"}

	err := svc.Create(context.Background(), client)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_Create_MalformedGSTIN(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{Name: "Sharma Retail LLP", GSTIN: "29XYZ", StateCode: "29"}

	err := svc.Create(context.Background(), client)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_Update_RevalidatesIdentity(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	client := &domain.Client{
		ID:        uuid.New(),
		Name:      "Sharma Retail LLP",
		GSTIN:     "27AAACB1234C1Z9",
		StateCode: "27",
	}
	repo.On("Update", mock.Anything, client).Return(nil)

	assert.NoError(t, svc.Update(context.Background(), client))
	repo.AssertExpectations(t)
}

func TestClientService_Delete(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
