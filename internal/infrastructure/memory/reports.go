package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación en memoria de ReportRepository.
type ReportRepo struct{ s *Store }

// Create persiste un reporte.
func (r *ReportRepo) Create(_ context.Context, rep *entity.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := clone(rep)
	c.Comments, c.Files = nil, nil
	r.s.reports = append(r.s.reports, c)
	return nil
}

// GetByID obtiene un reporte con comentarios y archivos.
func (r *ReportRepo) GetByID(_ context.Context, id string) (*entity.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rep := range r.s.reports {
		if rep.ID != id {
			continue
		}
		out := clone(rep)
		for _, c := range r.s.repComments {
			if c.ParentID == id {
				out.Comments = append(out.Comments, *c)
			}
		}
		for _, f := range r.s.repFiles {
			if f.ReportID == id {
				out.Files = append(out.Files, *f)
			}
		}
		return out, nil
	}
	return nil, nil
}

// UpdateStatus actualiza status y updated_at.
func (r *ReportRepo) UpdateStatus(_ context.Context, id string, status entity.ReportStatus, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if rep.ID == id {
			rep.Status = status
			rep.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ReportRepo) filteredLocked(f repository.ReportFilter) []*entity.Report {
	out := make([]*entity.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		if f.Date != nil && !sameDay(rep.Date, *f.Date) {
			continue
		}
		out = append(out, rep)
	}
	// date DESC, created_at DESC (estable sobre el orden de inserción)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// List lista reportes ordenados por fecha descendente.
func (r *ReportRepo) List(_ context.Context, f repository.ReportFilter, offset, limit int) ([]*entity.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneAll(window(r.filteredLocked(f), offset, limit)), nil
}

// Count total de reportes que cumplen el filtro.
func (r *ReportRepo) Count(_ context.Context, f repository.ReportFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.filteredLocked(f)), nil
}

// Delete elimina el reporte junto con comentarios y registros de archivos.
func (r *ReportRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.reports)
	r.s.reports = removeWhere(r.s.reports, func(rep *entity.Report) bool { return rep.ID == id })
	if len(r.s.reports) == n {
		return domain.ErrNotFound
	}
	r.s.repComments = removeWhere(r.s.repComments, func(c *entity.Comment) bool { return c.ParentID == id })
	r.s.repFiles = removeWhere(r.s.repFiles, func(f *entity.ReportFile) bool { return f.ReportID == id })
	return nil
}

func (r *ReportRepo) existsLocked(id string) bool {
	for _, rep := range r.s.reports {
		if rep.ID == id {
			return true
		}
	}
	return false
}

// AddComment agrega un comentario al reporte.
func (r *ReportRepo) AddComment(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.existsLocked(c.ParentID) {
		return domain.ErrNotFound
	}
	r.s.repComments = append(r.s.repComments, clone(c))
	return nil
}

// AddFile registra un archivo adjunto.
func (r *ReportRepo) AddFile(_ context.Context, f *entity.ReportFile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.existsLocked(f.ReportID) {
		return domain.ErrNotFound
	}
	r.s.repFiles = append(r.s.repFiles, clone(f))
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
