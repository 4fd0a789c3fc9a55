package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.PatrolRepository = (*PatrolRepo)(nil)

const patrolColumns = `id, check_point, status, notes, image_path, checked_by, property_id,
	total_check_point, created_at, updated_at`

// PatrolRepo implementación del puerto PatrolRepository sobre PostgreSQL.
type PatrolRepo struct {
	q Querier
}

// NewPatrolRepository construye el adaptador de persistencia para rondas.
func NewPatrolRepository(q Querier) *PatrolRepo {
	return &PatrolRepo{q: q}
}

// Create persiste una ronda. checked_by tiene FK a users.
func (r *PatrolRepo) Create(ctx context.Context, p *entity.Patrol) error {
	query := `
		INSERT INTO patrols (` + patrolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CheckPoint, string(p.Status), p.Notes, p.ImagePath, p.CheckedBy, p.PropertyID,
		p.TotalCheckPoint, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("checkedBy", "el usuario no existe")
		}
		return fmt.Errorf("insert patrol: %w", err)
	}
	return nil
}

// GetByID obtiene una ronda por ID.
func (r *PatrolRepo) GetByID(ctx context.Context, id string) (*entity.Patrol, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanPatrol(r.q.QueryRow(ctx, `SELECT `+patrolColumns+` FROM patrols WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patrol: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables (no el estado).
func (r *PatrolRepo) Update(ctx context.Context, p *entity.Patrol) error {
	query := `
		UPDATE patrols SET check_point = $2, notes = $3, image_path = $4, total_check_point = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.CheckPoint, p.Notes, p.ImagePath, p.TotalCheckPoint, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update patrol: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza estado y updated_at.
func (r *PatrolRepo) UpdateStatus(ctx context.Context, id string, status entity.PatrolStatus, updatedAt time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `UPDATE patrols SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("update patrol status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista rondas en orden natural.
func (r *PatrolRepo) List(ctx context.Context, offset, limit int) ([]*entity.Patrol, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+patrolColumns+` FROM patrols ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patrols: %w", err)
	}
	list, err := collect(rows, scanPatrol)
	if err != nil {
		return nil, fmt.Errorf("scan patrol: %w", err)
	}
	return list, nil
}

// Count total de rondas.
func (r *PatrolRepo) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM patrols`)
	if err != nil {
		return 0, fmt.Errorf("count patrols: %w", err)
	}
	return n, nil
}

// Delete elimina una ronda.
func (r *PatrolRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM patrols WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patrol: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPatrol(row pgxScanner) (*entity.Patrol, error) {
	var p entity.Patrol
	var status string
	err := row.Scan(
		&p.ID, &p.CheckPoint, &status, &p.Notes, &p.ImagePath, &p.CheckedBy, &p.PropertyID,
		&p.TotalCheckPoint, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = entity.PatrolStatus(status)
	return &p, nil
}
