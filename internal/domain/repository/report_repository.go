package repository

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// ReportFilter filtros opcionales del listado de reportes.
type ReportFilter struct {
	Date *time.Time // día exacto (campo date del reporte)
}

// ReportRepository puerto de persistencia para Report, comentarios y archivos.
// List ordena por date descendente.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	// GetByID incluye comentarios y archivos.
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	UpdateStatus(ctx context.Context, id string, status entity.ReportStatus, updatedAt time.Time) error
	List(ctx context.Context, filter ReportFilter, offset, limit int) ([]*entity.Report, error)
	Count(ctx context.Context, filter ReportFilter) (int, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, comment *entity.Comment) error
	AddFile(ctx context.Context, file *entity.ReportFile) error
}
