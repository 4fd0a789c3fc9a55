package memory

import (
	"context"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.JobRequestRepository = (*JobRequestRepo)(nil)

// JobRequestRepo implementación en memoria de JobRequestRepository.
type JobRequestRepo struct{ s *Store }

// Create persiste una solicitud (sin comentarios; se agregan con AddComment).
func (r *JobRequestRepo) Create(_ context.Context, job *entity.JobRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := clone(job)
	c.Comments = nil
	r.s.jobs = append(r.s.jobs, c)
	return nil
}

// GetByID obtiene una solicitud con sus comentarios.
func (r *JobRequestRepo) GetByID(_ context.Context, id string) (*entity.JobRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, j := range r.s.jobs {
		if j.ID == id {
			out := clone(j)
			out.Comments = r.commentsLocked(id)
			return out, nil
		}
	}
	return nil, nil
}

func (r *JobRequestRepo) commentsLocked(jobID string) []entity.Comment {
	var out []entity.Comment
	for _, c := range r.s.jobComments {
		if c.ParentID == jobID {
			out = append(out, *c)
		}
	}
	return out
}

// Update reemplaza los campos de la solicitud.
func (r *JobRequestRepo) Update(_ context.Context, job *entity.JobRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, j := range r.s.jobs {
		if j.ID == job.ID {
			c := clone(job)
			c.Comments = nil
			r.s.jobs[i] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

// UpdateStatus actualiza solo status, completed_at y updated_at.
func (r *JobRequestRepo) UpdateStatus(_ context.Context, id string, status entity.JobStatus, completedAt *time.Time, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, j := range r.s.jobs {
		if j.ID == id {
			j.Status = status
			j.CompletedAt = completedAt
			j.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// List lista solicitudes en orden de inserción (sin comentarios).
func (r *JobRequestRepo) List(_ context.Context, offset, limit int) ([]*entity.JobRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.s.jobs, offset, limit)), nil
}

// Count total de solicitudes.
func (r *JobRequestRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.jobs), nil
}

// Delete elimina la solicitud y sus comentarios.
func (r *JobRequestRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.jobs)
	r.s.jobs = removeWhere(r.s.jobs, func(j *entity.JobRequest) bool { return j.ID == id })
	if len(r.s.jobs) == n {
		return domain.ErrNotFound
	}
	r.s.jobComments = removeWhere(r.s.jobComments, func(c *entity.Comment) bool { return c.ParentID == id })
	return nil
}

// AddComment agrega un comentario; la solicitud debe existir.
func (r *JobRequestRepo) AddComment(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, j := range r.s.jobs {
		if j.ID == comment.ParentID {
			r.s.jobComments = append(r.s.jobComments, clone(comment))
			return nil
		}
	}
	return domain.ErrNotFound
}
