package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.MealCountRepository = (*MealCountRepo)(nil)

const mealCountColumns = `id, date, breakfast, lunch, dinner, created_at, updated_at`

// MealCountRepo implementación del puerto MealCountRepository sobre PostgreSQL.
type MealCountRepo struct {
	q Querier
}

// NewMealCountRepository construye el adaptador de persistencia para conteos de comidas.
func NewMealCountRepository(q Querier) *MealCountRepo {
	return &MealCountRepo{q: q}
}

// Upsert inserta o actualiza la fila de la fecha (UNIQUE date). ID y created_at conservan el valor original.
func (r *MealCountRepo) Upsert(ctx context.Context, m *entity.MealCount) error {
	query := `
		INSERT INTO meal_counts (` + mealCountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			breakfast = EXCLUDED.breakfast,
			lunch = EXCLUDED.lunch,
			dinner = EXCLUDED.dinner,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.Date, m.Breakfast, m.Lunch, m.Dinner, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert meal_count: %w", err)
	}
	return nil
}

// GetByDate obtiene el conteo de una fecha; (nil, nil) si no existe.
func (r *MealCountRepo) GetByDate(ctx context.Context, date time.Time) (*entity.MealCount, error) {
	m, err := scanMealCount(r.q.QueryRow(ctx, `SELECT `+mealCountColumns+` FROM meal_counts WHERE date = $1`, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meal_count: %w", err)
	}
	return m, nil
}

// List lista conteos en orden de creación.
func (r *MealCountRepo) List(ctx context.Context, offset, limit int) ([]*entity.MealCount, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+mealCountColumns+` FROM meal_counts ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list meal_counts: %w", err)
	}
	list, err := collect(rows, scanMealCount)
	if err != nil {
		return nil, fmt.Errorf("scan meal_count: %w", err)
	}
	return list, nil
}

// Count total de conteos.
func (r *MealCountRepo) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM meal_counts`)
	if err != nil {
		return 0, fmt.Errorf("count meal_counts: %w", err)
	}
	return n, nil
}

// ListRange devuelve los conteos entre from y to (inclusive) ordenados por fecha.
func (r *MealCountRepo) ListRange(ctx context.Context, from, to time.Time) ([]*entity.MealCount, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+mealCountColumns+` FROM meal_counts WHERE date BETWEEN $1 AND $2 ORDER BY date`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meal_counts range: %w", err)
	}
	list, err := collect(rows, scanMealCount)
	if err != nil {
		return nil, fmt.Errorf("scan meal_count: %w", err)
	}
	return list, nil
}

func scanMealCount(row pgxScanner) (*entity.MealCount, error) {
	var m entity.MealCount
	if err := row.Scan(&m.ID, &m.Date, &m.Breakfast, &m.Lunch, &m.Dinner, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Date = time.Date(m.Date.Year(), m.Date.Month(), m.Date.Day(), 0, 0, 0, 0, time.UTC)
	return &m, nil
}
