package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const entityDelivery = status.EntityDelivery

// DeliveryUseCase casos de uso de entregas (seguimiento de paquetes).
type DeliveryUseCase struct {
	repo     repository.DeliveryRepository
	statuses *status.Service
	now      func() time.Time
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository, statuses *status.Service) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, statuses: statuses, now: time.Now}
}

// Create registra una entrega. callerID se usa cuando no viene userId.
func (uc *DeliveryUseCase) Create(ctx context.Context, callerID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if strings.TrimSpace(in.UserID) == "" {
		in.UserID = callerID
	}
	var m missing
	m.str("trackingNo", in.TrackingNo)
	m.str("itemName", in.ItemName)
	m.str("receiverName", in.ReceiverName)
	m.str("userId", in.UserID)
	if err := m.err(); err != nil {
		return nil, err
	}
	st := entity.DeliveryPending
	if strings.TrimSpace(in.Status) != "" {
		parsed, err := entity.DeliveryStatuses.Parse(in.Status)
		if err != nil {
			return nil, err
		}
		st = parsed
	}
	weight := decimal.Zero
	if in.Weight != nil {
		if in.Weight.IsNegative() {
			return nil, domain.NewValidationError("weight", "no puede ser negativo")
		}
		weight = *in.Weight
	}
	now := uc.now().UTC()
	d := &entity.Delivery{
		ID:            uuid.New().String(),
		TrackingNo:    strings.TrimSpace(in.TrackingNo),
		ItemName:      strings.TrimSpace(in.ItemName),
		Status:        st,
		ReceiverName:  strings.TrimSpace(in.ReceiverName),
		ReceiverPhone: in.ReceiverPhone,
		SenderName:    in.SenderName,
		SenderPhone:   in.SenderPhone,
		Location:      in.Location,
		Notes:         in.Notes,
		Weight:        weight,
		UserID:        in.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewDuplicate("trackingNo", "ya existe una entrega con ese número de guía")
		}
		return nil, domain.Persistence(entityDelivery, "crear", err)
	}
	return toDeliveryResponse(d), nil
}

// GetByID obtiene una entrega.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id string) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityDelivery, "consultar", err)
	}
	if d == nil {
		return nil, domain.NewNotFound(entityDelivery, id)
	}
	return toDeliveryResponse(d), nil
}

// UpdateStatus delega en el servicio de transición de estados.
func (uc *DeliveryUseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*dto.DeliveryResponse, error) {
	d, err := uc.statuses.UpdateDelivery(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// List devuelve una página de entregas.
func (uc *DeliveryUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.DeliveryResponse], error) {
	q = q.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityDelivery, "contar", err)
	}
	list, err := uc.repo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityDelivery, "listar", err)
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return dto.NewListResponse(items, q, total), nil
}

// Delete elimina una entrega.
func (uc *DeliveryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound(entityDelivery, id)
		}
		return domain.Persistence(entityDelivery, "eliminar", err)
	}
	return nil
}
