package entity

import "time"

// Employee empleado registrado en una empresa (no necesariamente usuario del sistema).
type Employee struct {
	ID        string
	Name      string
	Position  string
	Phone     string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
