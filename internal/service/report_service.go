package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"designdesk/internal/csvexport"
	"designdesk/internal/domain"
	"designdesk/internal/port"
)

// ReportService produces the GST invoice register export used for monthly
// return preparation.
type ReportService interface {
	// WriteInvoiceRegister streams a CSV register of all invoices dated within
	// [from, to] to w, including the UTF-8 BOM and header row.
	WriteInvoiceRegister(ctx context.Context, w io.Writer, from, to time.Time) error
}

type reportService struct {
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(invoiceRepo port.InvoiceRepository, clientRepo port.ClientRepository) ReportService {
	return &reportService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

func (s *reportService) WriteInvoiceRegister(ctx context.Context, w io.Writer, from, to time.Time) error {
	invoices, err := s.invoiceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return err
	}

	rows := make([]csvexport.RegisterRow, 0, len(invoices))
	buyers := make(map[uuid.UUID]*domain.Client)
	for i := range invoices {
		inv := &invoices[i]
		buyer, ok := buyers[inv.ClientID]
		if !ok {
			buyer, err = s.clientRepo.GetByID(ctx, inv.ClientID)
			if err != nil {
				return err
			}
			buyers[inv.ClientID] = buyer
		}
		rows = append(rows, csvexport.RegisterRow{Invoice: *inv, Buyer: *buyer})
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteRows(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
