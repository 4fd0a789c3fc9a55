package entity

import (
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
)

// Role rol de un usuario del sistema.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Roles enumeración cerrada de roles; EMPLOYEE se acepta como sinónimo de USER.
var Roles = domain.NewEnum("role", RoleAdmin, RoleManager, RoleUser).WithAlias("EMPLOYEE", RoleUser)

// User representa un usuario del sistema (solicitante, asignado, reportero).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
