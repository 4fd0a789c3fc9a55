package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

const entityUser = "el usuario"

// UserUseCase administración de usuarios (solo ADMIN).
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityUser, "consultar", err)
	}
	if user == nil {
		return nil, domain.NewNotFound(entityUser, id)
	}
	return dto.NewUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.UserResponse], error) {
	q = q.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityUser, "contar", err)
	}
	list, err := uc.repo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityUser, "listar", err)
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.NewUserResponse(u))
	}
	return dto.NewListResponse(items, q, total), nil
}

// UpdateRole cambia el rol del usuario. EMPLOYEE se normaliza a USER.
func (uc *UserUseCase) UpdateRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	r, err := entity.Roles.Parse(role)
	if err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityUser, "consultar", err)
	}
	if user == nil {
		return nil, domain.NewNotFound(entityUser, id)
	}
	user.Role = r
	user.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, domain.Persistence(entityUser, "actualizar", err)
	}
	return dto.NewUserResponse(user), nil
}

// Delete elimina un usuario. Un administrador no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return domain.NewValidationError("id", "no puede eliminar su propio usuario")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound(entityUser, id)
		}
		return domain.Persistence(entityUser, "eliminar", err)
	}
	return nil
}
