package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"designdesk/internal/domain"
)

// InvoiceRepository is the persistence contract for invoices and line items.
//
// The IRN mutators are guarded updates: they change rows only when the
// current lifecycle state permits the transition, and report whether a row
// was updated. Combined with the controller's per-invoice serialization this
// prevents two concurrent generate calls from both reaching the authority.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceLineItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLineItem, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceLineItem) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error

	// ListByDateRange returns all invoices dated within [from, to] inclusive,
	// ordered by invoice date. Used by the GST register export.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)

	// MarkIRNGenerated records a successful generation. It updates only if
	// the invoice still has no IRN and reports false otherwise.
	MarkIRNGenerated(ctx context.Context, id uuid.UUID, irn, ackNumber string, ackDate, generatedAt time.Time) (bool, error)

	// MarkIRNCancelled records a successful cancellation. It updates only if
	// the e-invoice status is still "generated" and reports false otherwise.
	MarkIRNCancelled(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) (bool, error)
}
