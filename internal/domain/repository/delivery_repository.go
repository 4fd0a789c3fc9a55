package repository

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// DeliveryRepository puerto de persistencia para Delivery.
// Create devuelve domain.ErrDuplicate si el tracking_no ya existe.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	GetByID(ctx context.Context, id string) (*entity.Delivery, error)
	UpdateStatus(ctx context.Context, id string, status entity.DeliveryStatus, updatedAt time.Time) error
	List(ctx context.Context, offset, limit int) ([]*entity.Delivery, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
