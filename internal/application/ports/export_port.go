package ports

import (
	"context"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// SpreadsheetExporter genera hojas de cálculo (XLSX) a partir de entidades.
type SpreadsheetExporter interface {
	ExportJobRequests(ctx context.Context, jobs []*entity.JobRequest) ([]byte, error)
	ExportMealCounts(ctx context.Context, meals []*entity.MealCount) ([]byte, error)
}

// ReportPDFGenerator genera la representación PDF de un reporte de actividad.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report) ([]byte, error)
}
