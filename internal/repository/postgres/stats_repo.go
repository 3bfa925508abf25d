package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"designdesk/internal/domain"
	"designdesk/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// Dashboard computes all dashboard aggregates in a single round trip.
func (r *statsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM leads) AS total_leads,
			(SELECT COUNT(*) FROM leads WHERE status NOT IN ('won', 'lost')) AS open_leads,
			(SELECT COUNT(*) FROM clients) AS total_clients,
			(SELECT COUNT(*) FROM projects WHERE status = 'in_progress') AS active_projects,
			(SELECT COUNT(*) FROM invoices WHERE status = 'draft') AS draft_invoices,
			(SELECT COUNT(*) FROM invoices WHERE status = 'issued') AS unpaid_invoices,
			(SELECT COALESCE(SUM(grand_total), 0) FROM invoices WHERE status = 'issued') AS outstanding_value,
			(SELECT COALESCE(SUM(grand_total), 0) FROM invoices
				WHERE status <> 'cancelled'
				AND invoice_date >= date_trunc('month', CURRENT_DATE)) AS billed_this_month,
			(SELECT COUNT(*) FROM invoices WHERE einvoice_status = 'generated') AS irns_generated,
			(SELECT COUNT(*) FROM invoices WHERE einvoice_status = 'cancelled') AS irns_cancelled`)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard: %w", err)
	}
	return &stats, nil
}
