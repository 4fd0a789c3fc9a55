package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	entityCompany  = "la empresa"
	entityEmployee = "el empleado"
)

// CompanyUseCase empresas y su nómina de empleados.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
	now       func() time.Time
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, employees repository.EmployeeRepository) *CompanyUseCase {
	return &CompanyUseCase{
		companies: companies,
		employees: employees,
		now:       time.Now,
	}
}

// normalizeName colapsa espacios y aplica mayúscula inicial por palabra.
// cases.Caser tiene estado, por eso se crea uno por llamada.
func (uc *CompanyUseCase) normalizeName(s string) string {
	return cases.Title(language.Spanish).String(strings.Join(strings.Fields(s), " "))
}

// CreateCompany crea una empresa. Devuelve DuplicateError si el nombre ya existe.
func (uc *CompanyUseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      uc.normalizeName(in.Name),
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewDuplicate("name", "ya existe una empresa con ese nombre")
		}
		return nil, domain.Persistence(entityCompany, "crear", err)
	}
	return toCompanyResponse(company), nil
}

// GetCompany obtiene una empresa por ID.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityCompany, "consultar", err)
	}
	if company == nil {
		return nil, domain.NewNotFound(entityCompany, id)
	}
	return toCompanyResponse(company), nil
}

// ListCompanies lista empresas con paginación.
func (uc *CompanyUseCase) ListCompanies(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.CompanyResponse], error) {
	q = q.Normalize()
	total, err := uc.companies.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityCompany, "contar", err)
	}
	list, err := uc.companies.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityCompany, "listar", err)
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return dto.NewListResponse(items, q, total), nil
}

// CreateEmployee registra un empleado en una empresa existente.
func (uc *CompanyUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var m missing
	m.str("name", in.Name)
	m.str("position", in.Position)
	m.str("companyId", in.CompanyID)
	if err := m.err(); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, domain.Persistence(entityEmployee, "crear", err)
	}
	if company == nil {
		return nil, domain.NewValidationError("companyId", "la empresa no existe")
	}
	now := uc.now().UTC()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      uc.normalizeName(in.Name),
		Position:  strings.TrimSpace(in.Position),
		Phone:     strings.TrimSpace(in.Phone),
		CompanyID: company.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.employees.Create(ctx, e); err != nil {
		return nil, domain.Persistence(entityEmployee, "crear", err)
	}
	return toEmployeeResponse(e), nil
}

// GetEmployee obtiene un empleado por ID.
func (uc *CompanyUseCase) GetEmployee(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityEmployee, "consultar", err)
	}
	if e == nil {
		return nil, domain.NewNotFound(entityEmployee, id)
	}
	return toEmployeeResponse(e), nil
}

// ListEmployees lista empleados; companyID vacío incluye todas las empresas.
func (uc *CompanyUseCase) ListEmployees(ctx context.Context, companyID string, q dto.PageQuery) (*dto.ListResponse[dto.EmployeeResponse], error) {
	q = q.Normalize()
	total, err := uc.employees.Count(ctx, companyID)
	if err != nil {
		return nil, domain.Persistence(entityEmployee, "contar", err)
	}
	list, err := uc.employees.List(ctx, companyID, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityEmployee, "listar", err)
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return dto.NewListResponse(items, q, total), nil
}

// DeleteEmployee elimina un empleado.
func (uc *CompanyUseCase) DeleteEmployee(ctx context.Context, id string) error {
	if err := uc.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound(entityEmployee, id)
		}
		return domain.Persistence(entityEmployee, "eliminar", err)
	}
	return nil
}
