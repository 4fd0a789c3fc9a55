package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository  = (*CompanyRepo)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
)

// CompanyRepo implementación en memoria de CompanyRepository.
type CompanyRepo struct{ s *Store }

// Create persiste una empresa; nombre único sin distinguir mayúsculas.
func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.companies {
		if strings.EqualFold(x.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.companies = append(r.s.companies, clone(c))
	return nil
}

// GetByID obtiene una empresa.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, x := range r.s.companies {
		if x.ID == id {
			return clone(x), nil
		}
	}
	return nil, nil
}

// List lista empresas en orden de inserción.
func (r *CompanyRepo) List(_ context.Context, offset, limit int) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.s.companies, offset, limit)), nil
}

// Count total de empresas.
func (r *CompanyRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.companies), nil
}

// EmployeeRepo implementación en memoria de EmployeeRepository.
type EmployeeRepo struct{ s *Store }

// Create persiste un empleado.
func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.employees = append(r.s.employees, clone(e))
	return nil
}

// GetByID obtiene un empleado.
func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, x := range r.s.employees {
		if x.ID == id {
			return clone(x), nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepo) filteredLocked(companyID string) []*entity.Employee {
	if companyID == "" {
		return r.s.employees
	}
	var out []*entity.Employee
	for _, x := range r.s.employees {
		if x.CompanyID == companyID {
			out = append(out, x)
		}
	}
	return out
}

// List lista empleados, opcionalmente de una empresa.
func (r *EmployeeRepo) List(_ context.Context, companyID string, offset, limit int) ([]*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.filteredLocked(companyID), offset, limit)), nil
}

// Count total de empleados del filtro.
func (r *EmployeeRepo) Count(_ context.Context, companyID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.filteredLocked(companyID)), nil
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.employees)
	r.s.employees = removeWhere(r.s.employees, func(e *entity.Employee) bool { return e.ID == id })
	if len(r.s.employees) == n {
		return domain.ErrNotFound
	}
	return nil
}
