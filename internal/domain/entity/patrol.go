package entity

import (
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
)

// PatrolStatus estado de una ronda de patrullaje.
type PatrolStatus string

const (
	PatrolPending    PatrolStatus = "PENDING"
	PatrolInProgress PatrolStatus = "IN_PROGRESS"
	PatrolCompleted  PatrolStatus = "COMPLETED"
)

// PatrolStatuses enumeración cerrada; ACTIVE se acepta como sinónimo de IN_PROGRESS.
var PatrolStatuses = domain.NewEnum("status", PatrolPending, PatrolInProgress, PatrolCompleted).
	WithAlias("ACTIVE", PatrolInProgress)

// Patrol control de un punto de patrullaje (PatrolCheck).
type Patrol struct {
	ID              string
	CheckPoint      string
	Status          PatrolStatus
	Notes           string
	ImagePath       string // object key en el almacenamiento
	CheckedBy       string // User.ID, debe existir
	PropertyID      string
	TotalCheckPoint int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
