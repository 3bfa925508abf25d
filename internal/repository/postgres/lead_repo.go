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

type leadRepo struct {
	db *sqlx.DB
}

// NewLeadRepo creates a new PostgreSQL-backed LeadRepository.
func NewLeadRepo(db *sqlx.DB) port.LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	lead.ID = uuid.New()
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, name, email, phone, city, source, budget, notes, status, assigned_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.City, lead.Source, lead.Budget,
		lead.Notes, lead.Status, lead.AssignedTo, lead.CreatedAt, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("leadRepo.Create: %w", err)
	}
	return nil
}

func (r *leadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.GetContext(ctx, &lead, "SELECT * FROM leads WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leadRepo.GetByID: %w", err)
	}
	return &lead, nil
}

func (r *leadRepo) List(ctx context.Context, status *domain.LeadStatus, offset, limit int) ([]domain.Lead, int, error) {
	where := ""
	args := []interface{}{}
	if status != nil {
		where = "WHERE status = $1"
		args = append(args, *status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM leads "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("leadRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM leads %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var leads []domain.Lead
	if err := r.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, 0, fmt.Errorf("leadRepo.List: %w", err)
	}
	return leads, total, nil
}

func (r *leadRepo) Update(ctx context.Context, lead *domain.Lead) error {
	lead.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE leads SET name = $2, email = $3, phone = $4, city = $5, source = $6,
			budget = $7, notes = $8, status = $9, assigned_to = $10, updated_at = $11
		 WHERE id = $1`,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.City, lead.Source, lead.Budget,
		lead.Notes, lead.Status, lead.AssignedTo, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("leadRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *leadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("leadRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
