package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

const entityJobRequest = status.EntityJobRequest

// JobRequestUseCase casos de uso de solicitudes de trabajo.
type JobRequestUseCase struct {
	repo     repository.JobRequestRepository
	tx       ports.JobRequestTxRunner
	statuses *status.Service
	exporter ports.SpreadsheetExporter
	now      func() time.Time
}

// NewJobRequestUseCase construye el caso de uso.
func NewJobRequestUseCase(
	repo repository.JobRequestRepository,
	tx ports.JobRequestTxRunner,
	statuses *status.Service,
	exporter ports.SpreadsheetExporter,
) *JobRequestUseCase {
	return &JobRequestUseCase{repo: repo, tx: tx, statuses: statuses, exporter: exporter, now: time.Now}
}

// Create valida y crea la solicitud. El estado siempre nace OPEN, sin importar lo que envíe el cliente.
// Si viene un comentario inicial se guarda en la misma transacción.
func (uc *JobRequestUseCase) Create(ctx context.Context, in dto.CreateJobRequestRequest) (*dto.JobRequestResponse, error) {
	var m missing
	m.str("title", in.Title)
	m.str("description", in.Description)
	m.str("category", in.Category)
	m.str("requestedBy", in.RequestedBy)
	if err := m.err(); err != nil {
		return nil, err
	}
	priority, err := entity.Priorities.Parse(in.Priority)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	job := &entity.JobRequest{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		Status:      entity.JobOpen,
		Category:    strings.TrimSpace(in.Category),
		Location:    nonEmpty(in.Location),
		AssignedTo:  nonEmpty(in.AssignedTo),
		RequestedBy: in.RequestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		due, err := parseDateTime("dueDate", *in.DueDate)
		if err != nil {
			return nil, err
		}
		job.DueDate = &due
	}

	var first *entity.Comment
	if in.Comment != nil && strings.TrimSpace(*in.Comment) != "" {
		first = &entity.Comment{
			ID:        uuid.New().String(),
			ParentID:  job.ID,
			Content:   strings.TrimSpace(*in.Comment),
			UserID:    in.RequestedBy,
			CreatedAt: now,
		}
	}
	err = uc.tx.RunJobRequest(ctx, func(repo repository.JobRequestRepository) error {
		if err := repo.Create(ctx, job); err != nil {
			return err
		}
		if first != nil {
			return repo.AddComment(ctx, first)
		}
		return nil
	})
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "crear", err)
	}
	if first != nil {
		job.Comments = []entity.Comment{*first}
	}
	return toJobRequestResponse(job), nil
}

// GetByID obtiene una solicitud con sus comentarios.
func (uc *JobRequestUseCase) GetByID(ctx context.Context, id string) (*dto.JobRequestResponse, error) {
	job, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "consultar", err)
	}
	if job == nil {
		return nil, domain.NewNotFound(entityJobRequest, id)
	}
	return toJobRequestResponse(job), nil
}

// Update aplica una actualización parcial. El estado no se toca aquí.
func (uc *JobRequestUseCase) Update(ctx context.Context, id string, in dto.UpdateJobRequestRequest) (*dto.JobRequestResponse, error) {
	job, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "consultar", err)
	}
	if job == nil {
		return nil, domain.NewNotFound(entityJobRequest, id)
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.NewValidationError("title", "no puede estar vacío")
		}
		job.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.NewValidationError("description", "no puede estar vacío")
		}
		job.Description = *in.Description
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, domain.NewValidationError("category", "no puede estar vacío")
		}
		job.Category = strings.TrimSpace(*in.Category)
	}
	if in.Priority != nil {
		p, err := entity.Priorities.Parse(*in.Priority)
		if err != nil {
			return nil, err
		}
		job.Priority = p
	}
	if in.Location != nil {
		job.Location = nonEmpty(in.Location)
	}
	if in.AssignedTo != nil {
		job.AssignedTo = nonEmpty(in.AssignedTo)
	}
	if in.DueDate != nil {
		if strings.TrimSpace(*in.DueDate) == "" {
			job.DueDate = nil
		} else {
			due, err := parseDateTime("dueDate", *in.DueDate)
			if err != nil {
				return nil, err
			}
			job.DueDate = &due
		}
	}
	job.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound(entityJobRequest, id)
		}
		return nil, domain.Persistence(entityJobRequest, "actualizar", err)
	}
	return toJobRequestResponse(job), nil
}

// UpdateStatus delega en el servicio de transición de estados.
func (uc *JobRequestUseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*dto.JobRequestResponse, error) {
	job, err := uc.statuses.UpdateJobRequest(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	return toJobRequestResponse(job), nil
}

// List devuelve una página de solicitudes en orden de creación.
func (uc *JobRequestUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.JobRequestResponse], error) {
	q = q.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "contar", err)
	}
	list, err := uc.repo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "listar", err)
	}
	items := make([]dto.JobRequestResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobRequestResponse(j))
	}
	return dto.NewListResponse(items, q, total), nil
}

// Delete elimina la solicitud (y sus comentarios en cascada).
func (uc *JobRequestUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound(entityJobRequest, id)
		}
		return domain.Persistence(entityJobRequest, "eliminar", err)
	}
	return nil
}

// AddComment agrega un comentario append-only. userID vacío usa el usuario autenticado.
func (uc *JobRequestUseCase) AddComment(ctx context.Context, id, callerID string, in dto.CommentRequest) (*dto.CommentResponse, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.NewValidationError("content", "es requerido")
	}
	userID := in.UserID
	if userID == "" {
		userID = callerID
	}
	c := &entity.Comment{
		ID:        uuid.New().String(),
		ParentID:  id,
		Content:   strings.TrimSpace(in.Content),
		UserID:    userID,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.AddComment(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound(entityJobRequest, id)
		}
		return nil, domain.Persistence(entityJobRequest, "comentar", err)
	}
	return &dto.CommentResponse{ID: c.ID, Content: c.Content, UserID: c.UserID, CreatedAt: c.CreatedAt}, nil
}

// Export genera el XLSX con todas las solicitudes.
func (uc *JobRequestUseCase) Export(ctx context.Context) ([]byte, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "contar", err)
	}
	jobs, err := listAll(total, func(offset, limit int) ([]*entity.JobRequest, error) {
		return uc.repo.List(ctx, offset, limit)
	})
	if err != nil {
		return nil, domain.Persistence(entityJobRequest, "listar", err)
	}
	return uc.exporter.ExportJobRequests(ctx, jobs)
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
