package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.MealCountRepository = (*MealCountRepo)(nil)

// MealCountRepo implementación en memoria de MealCountRepository.
type MealCountRepo struct{ s *Store }

// Upsert crea la fila de la fecha o actualiza sus conteos conservando ID y CreatedAt.
func (r *MealCountRepo) Upsert(_ context.Context, m *entity.MealCount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.meals {
		if sameDay(x.Date, m.Date) {
			x.Breakfast, x.Lunch, x.Dinner = m.Breakfast, m.Lunch, m.Dinner
			x.UpdatedAt = m.UpdatedAt
			m.ID, m.CreatedAt = x.ID, x.CreatedAt
			return nil
		}
	}
	r.s.meals = append(r.s.meals, clone(m))
	return nil
}

// GetByDate obtiene el conteo del día.
func (r *MealCountRepo) GetByDate(_ context.Context, date time.Time) (*entity.MealCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, x := range r.s.meals {
		if sameDay(x.Date, date) {
			return clone(x), nil
		}
	}
	return nil, nil
}

// List lista conteos en orden de inserción.
func (r *MealCountRepo) List(_ context.Context, offset, limit int) ([]*entity.MealCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.s.meals, offset, limit)), nil
}

// Count total de días registrados.
func (r *MealCountRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.meals), nil
}

// ListRange devuelve los conteos entre from y to (inclusive) ordenados por fecha.
func (r *MealCountRepo) ListRange(_ context.Context, from, to time.Time) ([]*entity.MealCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.MealCount
	for _, x := range r.s.meals {
		if x.Date.Before(from) || x.Date.After(to) {
			continue
		}
		out = append(out, clone(x))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
