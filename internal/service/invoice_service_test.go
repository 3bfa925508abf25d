package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"designdesk/internal/domain"
	"designdesk/internal/gst"
	"designdesk/internal/port"
	"designdesk/internal/service"
	"designdesk/mocks"
)

func sellerProfile() *domain.CompanyProfile {
	return &domain.CompanyProfile{
		LegalName: "DesignDesk Interiors Private Limited",
		GSTIN:     "29ABCDE1234F1Z5",
		Address1:  "14 Residency Road",
		City:      "Bengaluru",
		StateCode: "29",
		PinCode:   "560001",
	}
}

func newInvoiceService(invoiceRepo *mocks.MockInvoiceRepo, clientRepo *mocks.MockClientRepo, email *mocks.MockEmailSender) service.InvoiceService {
	states := gst.NewStateRegistry()
	return service.NewInvoiceService(
		invoiceRepo, clientRepo,
		gst.NewCalculator(states), gst.NewValidator(states),
		nil, email, sellerProfile())
}

func intraStateClient() *domain.Client {
	return &domain.Client{
		ID:        uuid.New(),
		Name:      "Rao Residence",
		Email:     "rao@example.com",
		GSTIN:     "29AAACB1234C1Z9",
		StateCode: "29",
		PinCode:   "560034",
	}
}

func invoiceInput(clientID uuid.UUID) *service.CreateInvoiceInput {
	return &service.CreateInvoiceInput{
		ProjectID:     uuid.New(),
		ClientID:      clientID,
		InvoiceNumber: "INV-2025/042",
		InvoiceDate:   time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		Items: []service.LineItemInput{{
			Description: "Modular wardrobe",
			ItemCode:    "9403",
			Quantity:    2,
			Unit:        "nos",
			UnitPrice:   500,
			TaxRate:     18,
		}},
		CreatedBy: uuid.New(),
	}
}

func TestInvoiceService_Create_IntraStateSplitsCGSTSGST(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), invoiceInput(client.ID))
	assert.NoError(t, err)

	inv := result.Invoice
	assert.Equal(t, domain.DocTypeB2B, inv.DocType)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, domain.EInvoiceStatusNone, inv.EInvoiceStatus)
	assert.Equal(t, 1000.0, inv.TaxableValue)
	assert.Equal(t, 90.0, inv.CGST)
	assert.Equal(t, 90.0, inv.SGST)
	assert.Equal(t, 0.0, inv.IGST)
	assert.Equal(t, 1180.0, inv.GrandTotal)
	assert.Equal(t, "One Thousand One Hundred Eighty Rupees Only", inv.AmountInWords)

	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].SlNo)
	assert.Equal(t, 90.0, result.Items[0].CGST)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_InterStateUsesIGST(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	client.GSTIN = "27AAACB1234C1Z9"
	client.StateCode = "27"
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), invoiceInput(client.ID))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.Invoice.CGST)
	assert.Equal(t, 0.0, result.Invoice.SGST)
	assert.Equal(t, 180.0, result.Invoice.IGST)
}

func TestInvoiceService_Create_NoGSTINMeansB2C(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	client.GSTIN = ""
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Create(context.Background(), invoiceInput(client.ID))
	assert.NoError(t, err)
	assert.Equal(t, domain.DocTypeB2C, result.Invoice.DocType)
}

func TestInvoiceService_Create_InvalidInvoiceNumber(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	input := invoiceInput(uuid.New())
	input.InvoiceNumber = "THIS-NUMBER-IS-FAR-TOO-LONG"

	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_BadItemCode(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)

	input := invoiceInput(client.ID)
	input.Items[0].ItemCode = "94032" // invalid HSN length

	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_DisallowedTaxRate(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)

	input := invoiceInput(client.ID)
	input.Items[0].TaxRate = 19

	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateItems_FrozenOnceIRNExists(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	id := uuid.New()
	irn := "abc"
	invoiceRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, IRN: &irn}, nil)

	_, err := svc.UpdateItems(context.Background(), id, invoiceInput(uuid.New()).Items)
	assert.ErrorIs(t, err, domain.ErrInvoiceFrozen)
	invoiceRepo.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateItems_RecomputesTotals(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := newInvoiceService(invoiceRepo, clientRepo, nil)

	client := intraStateClient()
	id := uuid.New()
	invoiceRepo.On("GetByID", mock.Anything, id).
		Return(&domain.Invoice{ID: id, ClientID: client.ID, Status: domain.InvoiceStatusDraft}, nil)
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	invoiceRepo.On("ReplaceItems", mock.Anything, id, mock.Anything).Return(nil)
	invoiceRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	items := []service.LineItemInput{{
		Description: "False ceiling",
		IsService:   true,
		ItemCode:    "998391",
		Quantity:    100,
		Unit:        "sqft",
		UnitPrice:   85,
		TaxRate:     18,
	}}

	result, err := svc.UpdateItems(context.Background(), id, items)
	assert.NoError(t, err)
	assert.Equal(t, 8500.0, result.Invoice.TaxableValue)
	assert.Equal(t, 765.0, result.Invoice.CGST)
	assert.Equal(t, 765.0, result.Invoice.SGST)
	assert.Equal(t, 10030.0, result.Invoice.GrandTotal)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Issue(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo), nil)

	id := uuid.New()
	invoiceRepo.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusIssued).Return(nil)

	assert.NoError(t, svc.Issue(context.Background(), id))
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := newInvoiceService(invoiceRepo, new(mocks.MockClientRepo), nil)

	id := uuid.New()
	invoiceRepo.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusPaid).Return(nil)

	assert.NoError(t, svc.MarkPaid(context.Background(), id))
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_SendToClient(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	email := new(mocks.MockEmailSender)
	svc := newInvoiceService(invoiceRepo, clientRepo, email)

	client := intraStateClient()
	id := uuid.New()
	due := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	invoiceRepo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{
		ID:            id,
		ClientID:      client.ID,
		InvoiceNumber: "INV-2025/042",
		DueDate:       &due,
		GrandTotal:    1180,
	}, nil)
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	email.On("SendInvoiceEmail", mock.Anything, mock.MatchedBy(func(e *port.InvoiceEmail) bool {
		return e.ToEmail == "rao@example.com" &&
			e.InvoiceNumber == "INV-2025/042" &&
			e.AmountDue == 1180 &&
			e.DueDate == "15 Sep 2025"
	})).Return(nil)

	assert.NoError(t, svc.SendToClient(context.Background(), id))
	email.AssertExpectations(t)
}
