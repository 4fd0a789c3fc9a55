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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

const deliveryColumns = `id, tracking_no, item_name, status, receiver_name, receiver_phone, sender_name,
	sender_phone, location, notes, weight, user_id, created_at, updated_at`

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste una entrega. Devuelve domain.ErrDuplicate si el tracking_no ya existe.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.TrackingNo, d.ItemName, string(d.Status), d.ReceiverName, d.ReceiverPhone, d.SenderName,
		d.SenderPhone, d.Location, d.Notes, d.Weight, d.UserID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega por ID.
func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*entity.Delivery, error) {
	if !validID(id) {
		return nil, nil
	}
	d, err := scanDelivery(r.q.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

// UpdateStatus actualiza estado y updated_at.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, id string, status entity.DeliveryStatus, updatedAt time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `UPDATE deliveries SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista entregas en orden natural.
func (r *DeliveryRepo) List(ctx context.Context, offset, limit int) ([]*entity.Delivery, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	list, err := collect(rows, scanDelivery)
	if err != nil {
		return nil, fmt.Errorf("scan delivery: %w", err)
	}
	return list, nil
}

// Count total de entregas.
func (r *DeliveryRepo) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM deliveries`)
	if err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return n, nil
}

// Delete elimina una entrega.
func (r *DeliveryRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDelivery(row pgxScanner) (*entity.Delivery, error) {
	var d entity.Delivery
	var status string
	err := row.Scan(
		&d.ID, &d.TrackingNo, &d.ItemName, &status, &d.ReceiverName, &d.ReceiverPhone, &d.SenderName,
		&d.SenderPhone, &d.Location, &d.Notes, &d.Weight, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Status = entity.DeliveryStatus(status)
	return &d, nil
}
