package port

import (
	"context"

	"github.com/google/uuid"

	"designdesk/internal/domain"
)

// IRNAuditRepository is the append-only log of IRN lifecycle attempts.
// Entries are never updated or deleted.
type IRNAuditRepository interface {
	Append(ctx context.Context, entry *domain.IRNAuditEntry) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID, offset, limit int) ([]domain.IRNAuditEntry, int, error)
}
