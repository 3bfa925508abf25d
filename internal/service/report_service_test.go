package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"designdesk/internal/csvexport"
	"designdesk/internal/domain"
	"designdesk/internal/service"
	"designdesk/mocks"
)

func TestReportService_WriteInvoiceRegister(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := service.NewReportService(invoiceRepo, clientRepo)

	clientID := uuid.New()
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	invoices := []domain.Invoice{
		{
			ClientID:      clientID,
			InvoiceNumber: "INV-2025/041",
			InvoiceDate:   time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
			DocType:       domain.DocTypeB2B,
			Status:        domain.InvoiceStatusPaid,
			GrandTotal:    1180,
		},
		{
			ClientID:      clientID,
			InvoiceNumber: "INV-2025/042",
			InvoiceDate:   time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
			DocType:       domain.DocTypeB2B,
			Status:        domain.InvoiceStatusIssued,
			GrandTotal:    10030,
		},
	}
	invoiceRepo.On("ListByDateRange", mock.Anything, from, to).Return(invoices, nil)
	clientRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Client{
		ID:        clientID,
		Name:      "Sharma Retail LLP",
		GSTIN:     "27AAACB1234C1Z9",
		StateCode: "27",
	}, nil)

	var buf bytes.Buffer
	err := svc.WriteInvoiceRegister(context.Background(), &buf, from, to)
	assert.NoError(t, err)

	// BOM precedes the CSV content.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), csvexport.BOM))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), csvexport.BOM))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "INV-2025/041", records[1][0])
	assert.Equal(t, "INV-2025/042", records[2][0])
	assert.Equal(t, "Sharma Retail LLP", records[1][4])

	// Both invoices share a buyer; the client is loaded once.
	clientRepo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestReportService_WriteInvoiceRegister_EmptyRange(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	svc := service.NewReportService(invoiceRepo, clientRepo)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	invoiceRepo.On("ListByDateRange", mock.Anything, from, to).
		Return([]domain.Invoice{}, nil)

	var buf bytes.Buffer
	err := svc.WriteInvoiceRegister(context.Background(), &buf, from, to)
	assert.NoError(t, err)

	records, rerr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), csvexport.BOM))).ReadAll()
	assert.NoError(t, rerr)
	assert.Len(t, records, 1) // header only
	clientRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
