package port

import (
	"context"

	"designdesk/internal/domain"
)

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
