package dto

import "time"

// CreateReportRequest entrada para crear un reporte de actividad. Date en YYYY-MM-DD o RFC3339.
type CreateReportRequest struct {
	Title    string `json:"title"`
	Activity string `json:"activity"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	UserID   string `json:"userId"`
	Date     string `json:"date"`
}

// ReportFileResponse archivo adjunto con URL de descarga.
type ReportFileResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	UploadedBy  string    `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReportResponse salida de un reporte.
type ReportResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Activity  string               `json:"activity"`
	Content   string               `json:"content"`
	Status    string               `json:"status"`
	UserID    string               `json:"userId"`
	Date      time.Time            `json:"date"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Comments  []CommentResponse    `json:"comments"`
	Files     []ReportFileResponse `json:"files"`
}

// UploadFileInput archivo recibido por multipart, ya abierto.
type UploadFileInput struct {
	FileName    string
	ContentType string
	Size        int64
}
