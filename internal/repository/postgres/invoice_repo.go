package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceLineItem) error {
	now := time.Now().UTC()
	if inv.ID == (uuid.UUID{}) {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, project_id, client_id, invoice_number, invoice_date, due_date,
			doc_type, status, notes, taxable_value, total_discount, cgst, sgst, igst,
			round_off, grand_total, amount_in_words, einvoice_status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		inv.ID, inv.ProjectID, inv.ClientID, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate,
		inv.DocType, inv.Status, inv.Notes, inv.TaxableValue, inv.TotalDiscount, inv.CGST,
		inv.SGST, inv.IGST, inv.RoundOff, inv.GrandTotal, inv.AmountInWords,
		domain.EInvoiceStatusNone, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := insertItems(ctx, tx, inv.ID, items); err != nil {
		return fmt.Errorf("invoiceRepo.Create items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	inv.EInvoiceStatus = domain.EInvoiceStatusNone
	return nil
}

func insertItems(ctx context.Context, tx *sqlx.Tx, invoiceID uuid.UUID, items []domain.InvoiceLineItem) error {
	now := time.Now().UTC()
	for i := range items {
		item := &items[i]
		if item.ID == (uuid.UUID{}) {
			item.ID = uuid.New()
		}
		item.InvoiceID = invoiceID
		item.CreatedAt = now
		_, err := tx.ExecContext(ctx,
			`INSERT INTO invoice_line_items (id, invoice_id, sl_no, description, is_service, item_code,
				quantity, unit, unit_price, discount_pct, tax_rate, taxable_value, discount,
				cgst, sgst, igst, total, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
			item.ID, item.InvoiceID, item.SlNo, item.Description, item.IsService, item.ItemCode,
			item.Quantity, item.Unit, item.UnitPrice, item.DiscountPct, item.TaxRate,
			item.TaxableValue, item.Discount, item.CGST, item.SGST, item.IGST, item.Total, item.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE project_id = $1", projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByProject count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE project_id = $1
		 ORDER BY invoice_date DESC, created_at DESC
		 LIMIT $2 OFFSET $3`, projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByProject: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices
		 ORDER BY invoice_date DESC, created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLineItem, error) {
	var items []domain.InvoiceLineItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM invoice_line_items WHERE invoice_id = $1 ORDER BY sl_no", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET invoice_number = $2, invoice_date = $3, due_date = $4, doc_type = $5,
			status = $6, notes = $7, taxable_value = $8, total_discount = $9, cgst = $10,
			sgst = $11, igst = $12, round_off = $13, grand_total = $14, amount_in_words = $15,
			updated_at = $16
		 WHERE id = $1 AND irn IS NULL`,
		inv.ID, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate, inv.DocType, inv.Status,
		inv.Notes, inv.TaxableValue, inv.TotalDiscount, inv.CGST, inv.SGST, inv.IGST,
		inv.RoundOff, inv.GrandTotal, inv.AmountInWords, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update rows: %w", err)
	}
	if n == 0 {
		// Either the invoice does not exist or it is frozen behind an IRN.
		if _, gerr := r.GetByID(ctx, inv.ID); gerr != nil {
			return gerr
		}
		return domain.ErrInvoiceFrozen
	}
	return nil
}

func (r *invoiceRepo) ReplaceItems(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceLineItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.ReplaceItems begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Refuse to touch line items once an IRN exists.
	var frozen bool
	err = tx.GetContext(ctx, &frozen,
		"SELECT irn IS NOT NULL FROM invoices WHERE id = $1 FOR UPDATE", invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("invoiceRepo.ReplaceItems check: %w", err)
	}
	if frozen {
		return domain.ErrInvoiceFrozen
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM invoice_line_items WHERE invoice_id = $1", invoiceID); err != nil {
		return fmt.Errorf("invoiceRepo.ReplaceItems delete: %w", err)
	}
	if err := insertItems(ctx, tx, invoiceID, items); err != nil {
		return fmt.Errorf("invoiceRepo.ReplaceItems insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.ReplaceItems commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE invoice_date >= $1 AND invoice_date <= $2
		 ORDER BY invoice_date, invoice_number`, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkIRNGenerated is a guarded update: it succeeds only while the invoice
// still has no IRN, so a lost race shows up as updated == false instead of a
// silent double write.
func (r *invoiceRepo) MarkIRNGenerated(ctx context.Context, id uuid.UUID, irn, ackNumber string, ackDate, generatedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET einvoice_status = $2, irn = $3, ack_number = $4, ack_date = $5,
			irn_generated_at = $6, updated_at = $7
		 WHERE id = $1 AND irn IS NULL AND einvoice_status = $8`,
		id, domain.EInvoiceStatusGenerated, irn, ackNumber, ackDate, generatedAt,
		time.Now().UTC(), domain.EInvoiceStatusNone)
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.MarkIRNGenerated: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.MarkIRNGenerated rows: %w", err)
	}
	return n == 1, nil
}

// MarkIRNCancelled is a guarded update: it succeeds only while the e-invoice
// status is still "generated". Cancellation is a status change, not erasure;
// the IRN and acknowledgement fields stay in place.
func (r *invoiceRepo) MarkIRNCancelled(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET einvoice_status = $2, irn_cancelled_at = $3, cancel_reason = $4, updated_at = $5
		 WHERE id = $1 AND einvoice_status = $6`,
		id, domain.EInvoiceStatusCancelled, cancelledAt, reason, time.Now().UTC(),
		domain.EInvoiceStatusGenerated)
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.MarkIRNCancelled: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.MarkIRNCancelled rows: %w", err)
	}
	return n == 1, nil
}
