package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

const entityMealCount = "el conteo de comidas"

// MaxExportDays rango máximo de días de una exportación de comidas.
const MaxExportDays = 366

// MealCountUseCase conteo diario de comidas (una fila por fecha).
type MealCountUseCase struct {
	repo     repository.MealCountRepository
	exporter ports.SpreadsheetExporter
	now      func() time.Time
}

// NewMealCountUseCase construye el caso de uso.
func NewMealCountUseCase(repo repository.MealCountRepository, exporter ports.SpreadsheetExporter) *MealCountUseCase {
	return &MealCountUseCase{repo: repo, exporter: exporter, now: time.Now}
}

// Save crea o reemplaza el conteo de la fecha indicada.
func (uc *MealCountUseCase) Save(ctx context.Context, in dto.SaveMealCountRequest) (*dto.MealCountResponse, error) {
	var m missing
	m.str("date", in.Date)
	m.intPtr("breakfast", in.Breakfast)
	m.intPtr("lunch", in.Lunch)
	m.intPtr("dinner", in.Dinner)
	if err := m.err(); err != nil {
		return nil, err
	}
	date, err := parseCivilDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	counts := []struct {
		field string
		v     int
	}{{"breakfast", *in.Breakfast}, {"lunch", *in.Lunch}, {"dinner", *in.Dinner}}
	for _, c := range counts {
		if c.v < 0 {
			return nil, domain.NewValidationError(c.field, "no puede ser negativo")
		}
	}
	now := uc.now().UTC()
	meal := &entity.MealCount{
		ID:        uuid.New().String(),
		Date:      date,
		Breakfast: *in.Breakfast,
		Lunch:     *in.Lunch,
		Dinner:    *in.Dinner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(ctx, meal); err != nil {
		return nil, domain.Persistence(entityMealCount, "guardar", err)
	}
	out := ToMealCountResponse(meal, date)
	return &out, nil
}

// GetByDate devuelve el conteo del día; si no existe responde la fila vacía (ceros).
func (uc *MealCountUseCase) GetByDate(ctx context.Context, date string) (*dto.MealCountResponse, error) {
	d, err := parseCivilDate("date", date)
	if err != nil {
		return nil, err
	}
	meal, err := uc.repo.GetByDate(ctx, d)
	if err != nil {
		return nil, domain.Persistence(entityMealCount, "consultar", err)
	}
	out := ToMealCountResponse(meal, d)
	return &out, nil
}

// List devuelve una página de conteos.
func (uc *MealCountUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.ListResponse[dto.MealCountResponse], error) {
	q = q.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, domain.Persistence(entityMealCount, "contar", err)
	}
	list, err := uc.repo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityMealCount, "listar", err)
	}
	items := make([]dto.MealCountResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMealCountResponse(m, m.Date))
	}
	return dto.NewListResponse(items, q, total), nil
}

// Export genera el XLSX entre from y to (inclusive). Sin fechas: los últimos 30 días.
func (uc *MealCountUseCase) Export(ctx context.Context, from, to string) ([]byte, error) {
	today := uc.now().UTC().Truncate(24 * time.Hour)
	end := today
	start := today.AddDate(0, 0, -29)
	var err error
	if strings.TrimSpace(to) != "" {
		if end, err = parseCivilDate("to", to); err != nil {
			return nil, err
		}
		if strings.TrimSpace(from) == "" {
			start = end.AddDate(0, 0, -29)
		}
	}
	if strings.TrimSpace(from) != "" {
		if start, err = parseCivilDate("from", from); err != nil {
			return nil, err
		}
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("to", "debe ser posterior o igual a from")
	}
	if end.Sub(start) > MaxExportDays*24*time.Hour {
		return nil, domain.NewValidationError("to", "el rango no puede superar 366 días")
	}
	meals, err := uc.repo.ListRange(ctx, start, end)
	if err != nil {
		return nil, domain.Persistence(entityMealCount, "listar", err)
	}
	return uc.exporter.ExportMealCounts(ctx, meals)
}

func parseCivilDate(field, s string) (time.Time, error) {
	d, err := entity.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "formato de fecha inválido (YYYY-MM-DD)")
	}
	return d, nil
}
