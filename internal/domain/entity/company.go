package entity

import "time"

// Company empresa a la que pertenecen los empleados.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
