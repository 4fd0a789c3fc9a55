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

var _ repository.ReportRepository = (*ReportRepo)(nil)

const reportColumns = `id, title, activity, content, status, user_id, date, created_at, updated_at`

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de persistencia para reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste un reporte.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	query := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rep.ID, rep.Title, rep.Activity, rep.Content, string(rep.Status), rep.UserID, rep.Date,
		rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte con comentarios y archivos.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	if !validID(id) {
		return nil, nil
	}
	rep, err := scanReport(r.q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, report_id, content, user_id, created_at
		FROM report_comments WHERE report_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list report comments: %w", err)
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("scan report comment: %w", err)
	}
	for _, c := range comments {
		rep.Comments = append(rep.Comments, *c)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, report_id, file_name, object_key, content_type, size, uploaded_by, created_at
		FROM report_files WHERE report_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list report files: %w", err)
	}
	files, err := collect(rows, scanReportFile)
	if err != nil {
		return nil, fmt.Errorf("scan report file: %w", err)
	}
	for _, f := range files {
		rep.Files = append(rep.Files, *f)
	}
	return rep, nil
}

// UpdateStatus actualiza estado y updated_at.
func (r *ReportRepo) UpdateStatus(ctx context.Context, id string, status entity.ReportStatus, updatedAt time.Time) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `UPDATE reports SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// reportWhere arma el WHERE del filtro; el día se compara en UTC.
func reportWhere(filter repository.ReportFilter) (string, []any) {
	if filter.Date == nil {
		return "", nil
	}
	day := filter.Date.UTC().Truncate(24 * time.Hour)
	return ` WHERE date >= $1 AND date < $2`, []any{day, day.Add(24 * time.Hour)}
}

// List lista reportes por date descendente.
func (r *ReportRepo) List(ctx context.Context, filter repository.ReportFilter, offset, limit int) ([]*entity.Report, error) {
	where, args := reportWhere(filter)
	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM reports%s ORDER BY date DESC, created_at DESC, id LIMIT $%d OFFSET $%d`,
		reportColumns, where, n+1, n+2)
	rows, err := r.q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	list, err := collect(rows, scanReport)
	if err != nil {
		return nil, fmt.Errorf("scan report: %w", err)
	}
	return list, nil
}

// Count total de reportes que cumplen el filtro.
func (r *ReportRepo) Count(ctx context.Context, filter repository.ReportFilter) (int, error) {
	where, args := reportWhere(filter)
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM reports`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

// Delete elimina el reporte; comentarios y archivos caen por ON DELETE CASCADE.
func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddComment inserta un comentario; ErrNotFound si el reporte no existe.
func (r *ReportRepo) AddComment(ctx context.Context, c *entity.Comment) error {
	if !validID(c.ParentID) {
		return domain.ErrNotFound
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO report_comments (id, report_id, content, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ParentID, c.Content, c.UserID, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert report comment: %w", err)
	}
	return nil
}

// AddFile registra un adjunto; ErrNotFound si el reporte no existe.
func (r *ReportRepo) AddFile(ctx context.Context, f *entity.ReportFile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO report_files (id, report_id, file_name, object_key, content_type, size, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.ReportID, f.FileName, f.ObjectKey, f.ContentType, f.Size, f.UploadedBy, f.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert report file: %w", err)
	}
	return nil
}

func scanReport(row pgxScanner) (*entity.Report, error) {
	var rep entity.Report
	var status string
	err := row.Scan(
		&rep.ID, &rep.Title, &rep.Activity, &rep.Content, &status, &rep.UserID, &rep.Date,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rep.Status = entity.ReportStatus(status)
	return &rep, nil
}

func scanReportFile(row pgxScanner) (*entity.ReportFile, error) {
	var f entity.ReportFile
	err := row.Scan(&f.ID, &f.ReportID, &f.FileName, &f.ObjectKey, &f.ContentType, &f.Size, &f.UploadedBy, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
