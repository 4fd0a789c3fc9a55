package repository

import (
	"context"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Company, error)
	Count(ctx context.Context) (int, error)
}

// EmployeeRepository puerto de persistencia para Employee. companyID vacío = todas las empresas.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context, companyID string, offset, limit int) ([]*entity.Employee, error)
	Count(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, id string) error
}
