package entity

import (
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
)

// Priority prioridad de una solicitud de trabajo.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// JobStatus estado de una solicitud de trabajo.
type JobStatus string

const (
	JobOpen       JobStatus = "OPEN"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
	JobCancelled  JobStatus = "CANCELLED"
)

var (
	// Priorities enumeración cerrada de prioridades.
	Priorities = domain.NewEnum("priority", PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent)
	// JobStatuses enumeración cerrada de estados de JobRequest.
	JobStatuses = domain.NewEnum("status", JobOpen, JobInProgress, JobCompleted, JobCancelled)
)

// JobRequest solicitud de trabajo (mantenimiento, soporte, etc.).
// Invariante: CompletedAt != nil si y solo si Status == COMPLETED.
type JobRequest struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Status      JobStatus
	Category    string
	Location    *string
	AssignedTo  *string // User.ID
	RequestedBy string  // User.ID
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []Comment
}

// ApplyStatus cambia el estado y ajusta CompletedAt. Repetir COMPLETED conserva la marca original.
func (j *JobRequest) ApplyStatus(s JobStatus, now time.Time) {
	if s == JobCompleted {
		if j.Status != JobCompleted || j.CompletedAt == nil {
			t := now
			j.CompletedAt = &t
		}
	} else {
		j.CompletedAt = nil
	}
	j.Status = s
	j.UpdatedAt = now
}
