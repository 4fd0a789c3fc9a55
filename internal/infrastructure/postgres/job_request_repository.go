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

var _ repository.JobRequestRepository = (*JobRequestRepo)(nil)

const jobRequestColumns = `id, title, description, priority, status, category, location, assigned_to,
	requested_by, due_date, completed_at, created_at, updated_at`

// JobRequestRepo implementación sobre PostgreSQL (usable con pool o tx).
type JobRequestRepo struct {
	q Querier
}

// NewJobRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobRequestRepository(q Querier) *JobRequestRepo {
	return &JobRequestRepo{q: q}
}

// Create persiste una solicitud de trabajo.
func (r *JobRequestRepo) Create(ctx context.Context, job *entity.JobRequest) error {
	query := `
		INSERT INTO job_requests (` + jobRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		job.ID, job.Title, job.Description, string(job.Priority), string(job.Status), job.Category,
		job.Location, job.AssignedTo, job.RequestedBy, job.DueDate, job.CompletedAt,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job_request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud con sus comentarios en orden de creación.
func (r *JobRequestRepo) GetByID(ctx context.Context, id string) (*entity.JobRequest, error) {
	if !validID(id) {
		return nil, nil
	}
	job, err := scanJobRequest(r.q.QueryRow(ctx, `SELECT `+jobRequestColumns+` FROM job_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job_request: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, job_request_id, content, user_id, created_at
		FROM job_request_comments WHERE job_request_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list job_request comments: %w", err)
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("scan job_request comment: %w", err)
	}
	for _, c := range comments {
		job.Comments = append(job.Comments, *c)
	}
	return job, nil
}

// Update reemplaza los campos editables (no el estado).
func (r *JobRequestRepo) Update(ctx context.Context, job *entity.JobRequest) error {
	query := `
		UPDATE job_requests SET title = $2, description = $3, priority = $4, category = $5,
			location = $6, assigned_to = $7, due_date = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		job.ID, job.Title, job.Description, string(job.Priority), job.Category,
		job.Location, job.AssignedTo, job.DueDate, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job_request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza estado, completed_at y updated_at en una sola sentencia.
func (r *JobRequestRepo) UpdateStatus(ctx context.Context, id string, status entity.JobStatus, completedAt *time.Time, updatedAt time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE job_requests SET status = $2, completed_at = $3, updated_at = $4 WHERE id = $1`,
		id, string(status), completedAt, updatedAt)
	if err != nil {
		return fmt.Errorf("update job_request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista solicitudes en orden natural (created_at, id). No carga comentarios.
func (r *JobRequestRepo) List(ctx context.Context, offset, limit int) ([]*entity.JobRequest, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+jobRequestColumns+` FROM job_requests ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list job_requests: %w", err)
	}
	list, err := collect(rows, scanJobRequest)
	if err != nil {
		return nil, fmt.Errorf("scan job_request: %w", err)
	}
	return list, nil
}

// Count total de solicitudes.
func (r *JobRequestRepo) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM job_requests`)
	if err != nil {
		return 0, fmt.Errorf("count job_requests: %w", err)
	}
	return n, nil
}

// Delete elimina la solicitud; los comentarios caen por ON DELETE CASCADE.
func (r *JobRequestRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM job_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job_request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddComment inserta un comentario; ErrNotFound si la solicitud no existe.
func (r *JobRequestRepo) AddComment(ctx context.Context, c *entity.Comment) error {
	if !validID(c.ParentID) {
		return domain.ErrNotFound
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO job_request_comments (id, job_request_id, content, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ParentID, c.Content, c.UserID, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert job_request comment: %w", err)
	}
	return nil
}

func scanJobRequest(row pgxScanner) (*entity.JobRequest, error) {
	var j entity.JobRequest
	var priority, status string
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &priority, &status, &j.Category, &j.Location, &j.AssignedTo,
		&j.RequestedBy, &j.DueDate, &j.CompletedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Priority = entity.Priority(priority)
	j.Status = entity.JobStatus(status)
	return &j, nil
}

func scanComment(row pgxScanner) (*entity.Comment, error) {
	var c entity.Comment
	if err := row.Scan(&c.ID, &c.ParentID, &c.Content, &c.UserID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
