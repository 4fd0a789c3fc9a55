package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ValidationError describe una entrada rechazada en el borde de la aplicación.
// Allowed se llena cuando el campo pertenece a una enumeración cerrada.
type ValidationError struct {
	Field   string
	Message string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: %s (valores permitidos: %s)", e.Field, e.Message, strings.Join(e.Allowed, ", "))
	}
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un error de validación para un campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RequiredFields devuelve un ValidationError que enumera los campos faltantes, o nil si no falta ninguno.
func RequiredFields(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return &ValidationError{Field: missing[0], Message: "es requerido"}
	}
	return &ValidationError{
		Field:   missing[0],
		Message: strings.Join(missing, ", ") + " son requeridos",
	}
}

// NotFoundError indica que el id referenciado no existe para la entidad dada.
type NotFoundError struct {
	Entity string // nombre legible con artículo, ej. "la solicitud de trabajo"
	ID     string
}

func (e *NotFoundError) Error() string {
	return "no se encontró " + e.Entity
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// PersistenceError envuelve un fallo de la capa de almacenamiento.
// Error() devuelve un mensaje genérico; el error original solo se registra en logs.
type PersistenceError struct {
	Entity string
	Op     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error al %s %s", e.Op, e.Entity)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence envuelve err como PersistenceError. Los errores de dominio ya tipados se devuelven intactos.
func Persistence(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrEmailAlreadyExists) || errors.Is(err, ErrConflict) {
		return err
	}
	return &PersistenceError{Entity: entity, Op: op, Err: err}
}

// DuplicateError indica que el valor de un campo único ya está en uso.
type DuplicateError struct {
	Field   string
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NewDuplicate construye un DuplicateError.
func NewDuplicate(field, message string) *DuplicateError {
	return &DuplicateError{Field: field, Message: message}
}
