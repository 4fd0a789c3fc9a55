package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

const entityPatrol = status.EntityPatrol

// MaxImageSize tamaño máximo de la foto de una ronda.
const MaxImageSize = 10 << 20

// PatrolUseCase casos de uso de rondas de patrullaje.
type PatrolUseCase struct {
	repo     repository.PatrolRepository
	users    repository.UserRepository
	statuses *status.Service
	storage  ports.ObjectStorage
	now      func() time.Time
}

// NewPatrolUseCase construye el caso de uso.
func NewPatrolUseCase(
	repo repository.PatrolRepository,
	users repository.UserRepository,
	statuses *status.Service,
	storage ports.ObjectStorage,
) *PatrolUseCase {
	return &PatrolUseCase{repo: repo, users: users, statuses: statuses, storage: storage, now: time.Now}
}

// Create valida y registra un control. checkedBy debe ser un usuario existente.
func (uc *PatrolUseCase) Create(ctx context.Context, in dto.CreatePatrolRequest) (*dto.PatrolResponse, error) {
	var m missing
	m.str("checkPoint", in.CheckPoint)
	m.str("status", in.Status)
	m.str("checkedBy", in.CheckedBy)
	m.str("propertyId", in.PropertyID)
	m.intPtr("totalCheckPoint", in.TotalCheckPoint)
	if err := m.err(); err != nil {
		return nil, err
	}
	st, err := entity.PatrolStatuses.Parse(in.Status)
	if err != nil {
		return nil, err
	}
	if *in.TotalCheckPoint < 0 {
		return nil, domain.NewValidationError("totalCheckPoint", "no puede ser negativo")
	}
	u, err := uc.users.GetByID(ctx, in.CheckedBy)
	if err != nil {
		return nil, domain.Persistence(entityPatrol, "crear", err)
	}
	if u == nil {
		return nil, domain.NewValidationError("checkedBy", "el usuario no existe")
	}
	now := uc.now().UTC()
	p := &entity.Patrol{
		ID:              uuid.New().String(),
		CheckPoint:      strings.TrimSpace(in.CheckPoint),
		Status:          st,
		Notes:           in.Notes,
		CheckedBy:       in.CheckedBy,
		PropertyID:      strings.TrimSpace(in.PropertyID),
		TotalCheckPoint: *in.TotalCheckPoint,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, domain.Persistence(entityPatrol, "crear", err)
	}
	return uc.response(ctx, p), nil
}

// GetByID obtiene una ronda con la URL de su foto.
func (uc *PatrolUseCase) GetByID(ctx context.Context, id string) (*dto.PatrolResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, p), nil
}

// Update aplica cambios parciales; el estado pasa por el servicio de transición.
func (uc *PatrolUseCase) Update(ctx context.Context, id string, in dto.UpdatePatrolRequest) (*dto.PatrolResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CheckPoint != nil && strings.TrimSpace(*in.CheckPoint) == "" {
		return nil, domain.NewValidationError("checkPoint", "no puede estar vacío")
	}
	if in.TotalCheckPoint != nil && *in.TotalCheckPoint < 0 {
		return nil, domain.NewValidationError("totalCheckPoint", "no puede ser negativo")
	}
	if in.Status != nil {
		if _, err := entity.PatrolStatuses.Parse(*in.Status); err != nil {
			return nil, err
		}
	}

	changed := false
	if in.CheckPoint != nil {
		p.CheckPoint = strings.TrimSpace(*in.CheckPoint)
		changed = true
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
		changed = true
	}
	if in.TotalCheckPoint != nil {
		p.TotalCheckPoint = *in.TotalCheckPoint
		changed = true
	}
	if changed {
		p.UpdatedAt = uc.now().UTC()
		if err := uc.repo.Update(ctx, p); err != nil {
			return nil, uc.wrap(id, "actualizar", err)
		}
	}
	if in.Status != nil {
		updated, err := uc.statuses.UpdatePatrol(ctx, id, *in.Status)
		if err != nil {
			return nil, err
		}
		p = updated
	}
	return uc.response(ctx, p), nil
}

// UpdateStatus delega en el servicio de transición de estados.
func (uc *PatrolUseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*dto.PatrolResponse, error) {
	p, err := uc.statuses.UpdatePatrol(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, p), nil
}

// UploadImage guarda la foto en el almacenamiento y actualiza imagePath.
// La foto anterior, si existía, se elimina.
func (uc *PatrolUseCase) UploadImage(ctx context.Context, id string, file dto.UploadFileInput, r io.Reader) (*dto.PatrolResponse, error) {
	if file.Size <= 0 {
		return nil, domain.NewValidationError("image", "es requerido")
	}
	if file.Size > MaxImageSize {
		return nil, domain.NewValidationError("image", "supera el tamaño máximo de 10 MiB")
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, domain.NewValidationError("image", "debe ser una imagen")
	}
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	key := "patrols/" + p.ID + "/" + uuid.New().String() + strings.ToLower(path.Ext(file.FileName))
	if err := uc.storage.Put(ctx, key, r, file.Size, file.ContentType); err != nil {
		return nil, domain.Persistence(entityPatrol, "guardar la imagen de", err)
	}
	previous := p.ImagePath
	p.ImagePath = key
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		if rmErr := uc.storage.Remove(ctx, key); rmErr != nil {
			log.Warn().Err(rmErr).Str("key", key).Msg("no se pudo revertir la subida de la imagen")
		}
		return nil, uc.wrap(id, "actualizar", err)
	}
	if previous != "" {
		if err := uc.storage.Remove(ctx, previous); err != nil {
			log.Warn().Err(err).Str("key", previous).Msg("no se pudo eliminar la imagen anterior")
		}
	}
	return uc.response(ctx, p), nil
}

// List devuelve una página de rondas.
func (uc *PatrolUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.PatrolResponse], error) {
	q = q.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityPatrol, "contar", err)
	}
	list, err := uc.repo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityPatrol, "listar", err)
	}
	items := make([]dto.PatrolResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.response(ctx, p))
	}
	return dto.NewListResponse(items, q, total), nil
}

// Delete elimina la ronda y su foto.
func (uc *PatrolUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.wrap(id, "eliminar", err)
	}
	if p.ImagePath != "" {
		if err := uc.storage.Remove(ctx, p.ImagePath); err != nil {
			log.Warn().Err(err).Str("key", p.ImagePath).Msg("no se pudo eliminar la imagen de la ronda")
		}
	}
	return nil
}

func (uc *PatrolUseCase) find(ctx context.Context, id string) (*entity.Patrol, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityPatrol, "consultar", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(entityPatrol, id)
	}
	return p, nil
}

func (uc *PatrolUseCase) wrap(id, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(entityPatrol, id)
	}
	return domain.Persistence(entityPatrol, op, err)
}

func (uc *PatrolUseCase) response(ctx context.Context, p *entity.Patrol) *dto.PatrolResponse {
	out := toPatrolResponse(p)
	if p.ImagePath != "" && uc.storage != nil {
		if url, err := uc.storage.URL(ctx, p.ImagePath); err == nil {
			out.ImageURL = url
		}
	}
	return out
}
