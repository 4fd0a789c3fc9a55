package repository

import (
	"context"
	"time"
)

// DashboardRepository consultas read-only para el tablero del día.
// Los rangos son [from, to).
type DashboardRepository interface {
	CountJobRequestsCreated(ctx context.Context, from, to time.Time) (int, error)
	CountJobRequestsByStatus(ctx context.Context) (map[string]int, error)
	CountDeliveriesCreated(ctx context.Context, from, to time.Time) (int, error)
	CountDeliveriesByStatus(ctx context.Context) (map[string]int, error)
	CountPatrolsCreated(ctx context.Context, from, to time.Time) (int, error)
	CountReportsOnDate(ctx context.Context, date time.Time) (int, error)
}
