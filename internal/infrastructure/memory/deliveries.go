package memory

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación en memoria de DeliveryRepository.
type DeliveryRepo struct{ s *Store }

// Create persiste una entrega; tracking_no único.
func (r *DeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.deliveries {
		if x.TrackingNo == d.TrackingNo {
			return domain.ErrDuplicate
		}
	}
	r.s.deliveries = append(r.s.deliveries, clone(d))
	return nil
}

// GetByID obtiene una entrega por ID.
func (r *DeliveryRepo) GetByID(_ context.Context, id string) (*entity.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, d := range r.s.deliveries {
		if d.ID == id {
			return clone(d), nil
		}
	}
	return nil, nil
}

// UpdateStatus actualiza status y updated_at.
func (r *DeliveryRepo) UpdateStatus(_ context.Context, id string, status entity.DeliveryStatus, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.deliveries {
		if d.ID == id {
			d.Status = status
			d.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// List lista entregas en orden de inserción.
func (r *DeliveryRepo) List(_ context.Context, offset, limit int) ([]*entity.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.s.deliveries, offset, limit)), nil
}

// Count total de entregas.
func (r *DeliveryRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.deliveries), nil
}

// Delete elimina una entrega.
func (r *DeliveryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.deliveries)
	r.s.deliveries = removeWhere(r.s.deliveries, func(d *entity.Delivery) bool { return d.ID == id })
	if len(r.s.deliveries) == n {
		return domain.ErrNotFound
	}
	return nil
}
