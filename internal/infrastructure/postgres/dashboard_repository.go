package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero del día.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountJobRequestsCreated solicitudes creadas en [from, to).
func (r *DashboardRepo) CountJobRequestsCreated(ctx context.Context, from, to time.Time) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM job_requests WHERE created_at >= $1 AND created_at < $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("count job_requests created: %w", err)
	}
	return n, nil
}

// CountJobRequestsByStatus total de solicitudes agrupadas por estado.
func (r *DashboardRepo) CountJobRequestsByStatus(ctx context.Context) (map[string]int, error) {
	return r.groupByStatus(ctx, `SELECT status, COUNT(*) FROM job_requests GROUP BY status`)
}

// CountDeliveriesCreated entregas creadas en [from, to).
func (r *DashboardRepo) CountDeliveriesCreated(ctx context.Context, from, to time.Time) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM deliveries WHERE created_at >= $1 AND created_at < $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("count deliveries created: %w", err)
	}
	return n, nil
}

// CountDeliveriesByStatus total de entregas agrupadas por estado.
func (r *DashboardRepo) CountDeliveriesByStatus(ctx context.Context) (map[string]int, error) {
	return r.groupByStatus(ctx, `SELECT status, COUNT(*) FROM deliveries GROUP BY status`)
}

// CountPatrolsCreated rondas registradas en [from, to).
func (r *DashboardRepo) CountPatrolsCreated(ctx context.Context, from, to time.Time) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM patrols WHERE created_at >= $1 AND created_at < $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("count patrols created: %w", err)
	}
	return n, nil
}

// CountReportsOnDate reportes cuyo campo date cae en el día indicado (UTC).
func (r *DashboardRepo) CountReportsOnDate(ctx context.Context, date time.Time) (int, error) {
	day := date.UTC().Truncate(24 * time.Hour)
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM reports WHERE date >= $1 AND date < $2`, day, day.Add(24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("count reports on date: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) groupByStatus(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("group by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}
