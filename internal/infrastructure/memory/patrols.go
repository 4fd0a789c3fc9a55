package memory

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.PatrolRepository = (*PatrolRepo)(nil)

// PatrolRepo implementación en memoria de PatrolRepository.
type PatrolRepo struct{ s *Store }

// Create persiste una ronda.
func (r *PatrolRepo) Create(_ context.Context, p *entity.Patrol) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.patrols = append(r.s.patrols, clone(p))
	return nil
}

// GetByID obtiene una ronda por ID.
func (r *PatrolRepo) GetByID(_ context.Context, id string) (*entity.Patrol, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.patrols {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return nil, nil
}

// Update reemplaza la ronda.
func (r *PatrolRepo) Update(_ context.Context, p *entity.Patrol) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, x := range r.s.patrols {
		if x.ID == p.ID {
			r.s.patrols[i] = clone(p)
			return nil
		}
	}
	return domain.ErrNotFound
}

// UpdateStatus actualiza status y updated_at.
func (r *PatrolRepo) UpdateStatus(_ context.Context, id string, status entity.PatrolStatus, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.patrols {
		if p.ID == id {
			p.Status = status
			p.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// List lista rondas en orden de inserción.
func (r *PatrolRepo) List(_ context.Context, offset, limit int) ([]*entity.Patrol, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.s.patrols, offset, limit)), nil
}

// Count total de rondas.
func (r *PatrolRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.patrols), nil
}

// Delete elimina una ronda.
func (r *PatrolRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.patrols)
	r.s.patrols = removeWhere(r.s.patrols, func(p *entity.Patrol) bool { return p.ID == id })
	if len(r.s.patrols) == n {
		return domain.ErrNotFound
	}
	return nil
}
