package dto

import "time"

// CreateJobRequestRequest entrada para crear una solicitud de trabajo.
// Status se ignora: toda solicitud nueva nace OPEN.
type CreateJobRequestRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status,omitempty"`
	Category    string  `json:"category"`
	Location    *string `json:"location,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	RequestedBy string  `json:"requestedBy"`
	DueDate     *string `json:"dueDate,omitempty"` // RFC3339 o YYYY-MM-DD
	Comment     *string `json:"comment,omitempty"` // comentario inicial opcional
}

// UpdateJobRequestRequest actualización parcial (el estado solo cambia por /status).
type UpdateJobRequestRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
	Location    *string `json:"location,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// CommentResponse comentario de una solicitud o reporte.
type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobRequestResponse proyección completa de una solicitud de trabajo.
type JobRequestResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    string            `json:"priority"`
	Status      string            `json:"status"`
	Category    string            `json:"category"`
	Location    *string           `json:"location"`
	AssignedTo  *string           `json:"assignedTo"`
	RequestedBy string            `json:"requestedBy"`
	DueDate     *time.Time        `json:"dueDate"`
	CompletedAt *time.Time        `json:"completedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Comments    []CommentResponse `json:"comments"`
}
