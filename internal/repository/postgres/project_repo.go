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

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, client_id, name, description, site_address, budget, status,
			start_date, end_date, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		project.ID, project.ClientID, project.Name, project.Description, project.SiteAddress,
		project.Budget, project.Status, project.StartDate, project.EndDate, project.CreatedBy,
		project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Project, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM projects WHERE client_id = $1", clientID)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.ListByClient count: %w", err)
	}

	var projects []domain.Project
	err = r.db.SelectContext(ctx, &projects,
		`SELECT * FROM projects WHERE client_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.ListByClient: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM projects"); err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List count: %w", err)
	}

	var projects []domain.Project
	err := r.db.SelectContext(ctx, &projects,
		"SELECT * FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = $2, description = $3, site_address = $4, budget = $5,
			status = $6, start_date = $7, end_date = $8, updated_at = $9
		 WHERE id = $1`,
		project.ID, project.Name, project.Description, project.SiteAddress, project.Budget,
		project.Status, project.StartDate, project.EndDate, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
