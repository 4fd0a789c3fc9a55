// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory).
//
// Reproduce la semántica del esquema PostgreSQL: orden de inserción, unicidad
// (email, tracking_no, fecha de comidas, nombre de empresa), upsert por fecha y borrado
// en cascada de comentarios y archivos. Los datos se pierden al reiniciar el proceso.
package memory

import (
	"sync"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// Store contiene todas las tablas protegidas por un único RWMutex.
type Store struct {
	mu sync.RWMutex

	users       []*entity.User
	jobs        []*entity.JobRequest
	jobComments []*entity.Comment
	deliveries  []*entity.Delivery
	patrols     []*entity.Patrol
	reports     []*entity.Report
	repComments []*entity.Comment
	repFiles    []*entity.ReportFile
	meals       []*entity.MealCount
	companies   []*entity.Company
	employees   []*entity.Employee
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// JobRequests repositorio de solicitudes de trabajo.
func (s *Store) JobRequests() *JobRequestRepo { return &JobRequestRepo{s: s} }

// Deliveries repositorio de entregas.
func (s *Store) Deliveries() *DeliveryRepo { return &DeliveryRepo{s: s} }

// Patrols repositorio de rondas.
func (s *Store) Patrols() *PatrolRepo { return &PatrolRepo{s: s} }

// Reports repositorio de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{s: s} }

// MealCounts repositorio de conteos de comidas.
func (s *Store) MealCounts() *MealCountRepo { return &MealCountRepo{s: s} }

// Companies repositorio de empresas.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Employees repositorio de empleados.
func (s *Store) Employees() *EmployeeRepo { return &EmployeeRepo{s: s} }

// Dashboard consultas agregadas.
func (s *Store) Dashboard() *DashboardRepo { return &DashboardRepo{s: s} }

// window devuelve items[offset:offset+limit] recortado a los límites del slice.
func window[T any](items []T, offset, limit int) []T {
	if limit <= 0 || offset >= len(items) {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// clone copia superficial de una entidad para no exponer el estado interno.
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneAll[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, v := range items {
		out = append(out, clone(v))
	}
	return out
}

// removeWhere elimina en sitio los elementos que cumplen pred.
func removeWhere[T any](items []*T, pred func(*T) bool) []*T {
	out := items[:0]
	for _, v := range items {
		if !pred(v) {
			out = append(out, v)
		}
	}
	for i := len(out); i < len(items); i++ {
		items[i] = nil
	}
	return out
}
