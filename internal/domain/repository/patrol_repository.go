package repository

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// PatrolRepository puerto de persistencia para Patrol.
type PatrolRepository interface {
	Create(ctx context.Context, patrol *entity.Patrol) error
	GetByID(ctx context.Context, id string) (*entity.Patrol, error)
	Update(ctx context.Context, patrol *entity.Patrol) error
	UpdateStatus(ctx context.Context, id string, status entity.PatrolStatus, updatedAt time.Time) error
	List(ctx context.Context, offset, limit int) ([]*entity.Patrol, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
