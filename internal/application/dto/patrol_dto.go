package dto

import "time"

// CreatePatrolRequest entrada para registrar un control de patrullaje.
type CreatePatrolRequest struct {
	CheckPoint      string `json:"checkPoint"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	CheckedBy       string `json:"checkedBy"`
	PropertyID      string `json:"propertyId"`
	TotalCheckPoint *int   `json:"totalCheckPoint"`
}

// UpdatePatrolRequest actualización parcial; Status pasa por el servicio de transición.
type UpdatePatrolRequest struct {
	CheckPoint      *string `json:"checkPoint,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	TotalCheckPoint *int    `json:"totalCheckPoint,omitempty"`
}

// PatrolResponse salida de una ronda.
type PatrolResponse struct {
	ID              string    `json:"id"`
	CheckPoint      string    `json:"checkPoint"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	ImagePath       string    `json:"imagePath"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	CheckedBy       string    `json:"checkedBy"`
	PropertyID      string    `json:"propertyId"`
	TotalCheckPoint int       `json:"totalCheckPoint"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
