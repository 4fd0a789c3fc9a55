package repository

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// JobRequestRepository puerto de persistencia para JobRequest y sus comentarios.
// Orden natural de listado: created_at ascendente. UpdateStatus y Delete devuelven
// domain.ErrNotFound si no afectan ninguna fila.
type JobRequestRepository interface {
	Create(ctx context.Context, job *entity.JobRequest) error
	// GetByID incluye los comentarios ordenados por fecha de creación.
	GetByID(ctx context.Context, id string) (*entity.JobRequest, error)
	Update(ctx context.Context, job *entity.JobRequest) error
	UpdateStatus(ctx context.Context, id string, status entity.JobStatus, completedAt *time.Time, updatedAt time.Time) error
	List(ctx context.Context, offset, limit int) ([]*entity.JobRequest, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, comment *entity.Comment) error
}
