package memory

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas sobre el almacén en memoria.
type DashboardRepo struct{ s *Store }

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// CountJobRequestsCreated solicitudes creadas en [from, to).
func (r *DashboardRepo) CountJobRequestsCreated(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, j := range r.s.jobs {
		if inRange(j.CreatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

// CountJobRequestsByStatus conteo por estado de todas las solicitudes.
func (r *DashboardRepo) CountJobRequestsByStatus(_ context.Context) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := map[string]int{}
	for _, j := range r.s.jobs {
		out[string(j.Status)]++
	}
	return out, nil
}

// CountDeliveriesCreated entregas creadas en [from, to).
func (r *DashboardRepo) CountDeliveriesCreated(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, d := range r.s.deliveries {
		if inRange(d.CreatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

// CountDeliveriesByStatus conteo por estado de todas las entregas.
func (r *DashboardRepo) CountDeliveriesByStatus(_ context.Context) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := map[string]int{}
	for _, d := range r.s.deliveries {
		out[string(d.Status)]++
	}
	return out, nil
}

// CountPatrolsCreated rondas registradas en [from, to).
func (r *DashboardRepo) CountPatrolsCreated(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.patrols {
		if inRange(p.CreatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

// CountReportsOnDate reportes cuyo campo date cae en el día indicado.
func (r *DashboardRepo) CountReportsOnDate(_ context.Context, date time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, rep := range r.s.reports {
		if sameDay(rep.Date, date) {
			n++
		}
	}
	return n, nil
}
