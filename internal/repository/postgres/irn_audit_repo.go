package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

type irnAuditRepo struct {
	db *sqlx.DB
}

// NewIRNAuditRepo creates a new PostgreSQL-backed IRNAuditRepository.
// The table is append-only; there is no update or delete path.
func NewIRNAuditRepo(db *sqlx.DB) port.IRNAuditRepository {
	return &irnAuditRepo{db: db}
}

func (r *irnAuditRepo) Append(ctx context.Context, entry *domain.IRNAuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO irn_audit_log (id, invoice_id, action, request, response, outcome, error_detail, actor_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.InvoiceID, entry.Action, entry.Request, entry.Response,
		entry.Outcome, entry.ErrorDetail, entry.ActorID, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("irnAuditRepo.Append: %w", err)
	}
	return nil
}

func (r *irnAuditRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID, offset, limit int) ([]domain.IRNAuditEntry, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM irn_audit_log WHERE invoice_id = $1", invoiceID)
	if err != nil {
		return nil, 0, fmt.Errorf("irnAuditRepo.ListByInvoice count: %w", err)
	}

	var entries []domain.IRNAuditEntry
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM irn_audit_log
		 WHERE invoice_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		invoiceID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("irnAuditRepo.ListByInvoice: %w", err)
	}
	return entries, total, nil
}
