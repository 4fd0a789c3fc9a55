package repository

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// MealCountRepository puerto de persistencia para MealCount.
type MealCountRepository interface {
	// Upsert crea o actualiza la fila de la fecha; completa ID y CreatedAt con los valores persistidos.
	Upsert(ctx context.Context, meal *entity.MealCount) error
	GetByDate(ctx context.Context, date time.Time) (*entity.MealCount, error)
	List(ctx context.Context, offset, limit int) ([]*entity.MealCount, error)
	Count(ctx context.Context) (int, error)
	// ListRange devuelve los conteos entre from y to (inclusive) ordenados por fecha.
	ListRange(ctx context.Context, from, to time.Time) ([]*entity.MealCount, error)
}
