package entity

import (
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
)

// ReportStatus clasificación de un reporte de actividad.
type ReportStatus string

const (
	ReportDaily     ReportStatus = "DAILY"
	ReportHourly    ReportStatus = "HOURLY"
	ReportImportant ReportStatus = "IMPORTANT"
)

// ReportStatuses enumeración cerrada de estados de Report.
var ReportStatuses = domain.NewEnum("status", ReportDaily, ReportHourly, ReportImportant)

// Report reporte de actividad. Los listados se ordenan por Date descendente.
type Report struct {
	ID        string
	Title     string
	Activity  string
	Content   string
	Status    ReportStatus
	UserID    string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Comments  []Comment
	Files     []ReportFile
}

// ReportFile archivo adjunto a un reporte, guardado en el almacenamiento de objetos.
type ReportFile struct {
	ID          string
	ReportID    string
	FileName    string
	ObjectKey   string
	ContentType string
	Size        int64
	UploadedBy  string
	CreatedAt   time.Time
}
