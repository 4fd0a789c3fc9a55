package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

const entityReport = status.EntityReport

// MaxReportFileSize tamaño máximo de un adjunto de reporte.
const MaxReportFileSize = 10 << 20

// ReportUseCase casos de uso de reportes de actividad.
type ReportUseCase struct {
	repo     repository.ReportRepository
	statuses *status.Service
	storage  ports.ObjectStorage
	pdf      ports.ReportPDFGenerator
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	repo repository.ReportRepository,
	statuses *status.Service,
	storage ports.ObjectStorage,
	pdf ports.ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{repo: repo, statuses: statuses, storage: storage, pdf: pdf, now: time.Now}
}

// Create valida y crea el reporte. callerID se usa cuando no viene userId.
func (uc *ReportUseCase) Create(ctx context.Context, callerID string, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if strings.TrimSpace(in.UserID) == "" {
		in.UserID = callerID
	}
	var m missing
	m.str("title", in.Title)
	m.str("activity", in.Activity)
	m.str("content", in.Content)
	m.str("userId", in.UserID)
	m.str("date", in.Date)
	m.str("status", in.Status)
	if err := m.err(); err != nil {
		return nil, err
	}
	st, err := entity.ReportStatuses.Parse(in.Status)
	if err != nil {
		return nil, err
	}
	date, err := parseDateTime("date", in.Date)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	r := &entity.Report{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(in.Title),
		Activity:  strings.TrimSpace(in.Activity),
		Content:   in.Content,
		Status:    st,
		UserID:    in.UserID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, domain.Persistence(entityReport, "crear", err)
	}
	return uc.response(ctx, r), nil
}

// GetByID devuelve el reporte con comentarios y archivos (con URL de descarga).
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	r, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, r), nil
}

// List devuelve una página de reportes (date descendente). date vacío = sin filtro.
func (uc *ReportUseCase) List(ctx context.Context, q dto.PageQuery, date string) (*dto.ListResponse[dto.ReportResponse], error) {
	q = q.Normalize()
	var filter repository.ReportFilter
	if strings.TrimSpace(date) != "" {
		d, err := entity.ParseDate(strings.TrimSpace(date))
		if err != nil {
			return nil, domain.NewValidationError("date", "formato de fecha inválido (YYYY-MM-DD)")
		}
		filter.Date = &d
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, domain.Persistence(entityReport, "contar", err)
	}
	list, err := uc.repo.List(ctx, filter, q.Offset(), q.Limit)
	if err != nil {
		return nil, domain.Persistence(entityReport, "listar", err)
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *uc.response(ctx, r))
	}
	return dto.NewListResponse(items, q, total), nil
}

// UpdateStatus delega en el servicio de transición de estados.
func (uc *ReportUseCase) UpdateStatus(ctx context.Context, id, newStatus string) (*dto.ReportResponse, error) {
	r, err := uc.statuses.UpdateReport(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	return uc.response(ctx, r), nil
}

// Delete elimina el reporte; comentarios y archivos se borran en cascada.
func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	r, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.wrap(id, "eliminar", err)
	}
	for _, f := range r.Files {
		if err := uc.storage.Remove(ctx, f.ObjectKey); err != nil {
			log.Warn().Err(err).Str("key", f.ObjectKey).Msg("no se pudo eliminar el adjunto del reporte")
		}
	}
	return nil
}

// AddComment agrega un comentario al reporte.
func (uc *ReportUseCase) AddComment(ctx context.Context, id, callerID string, in dto.CommentRequest) (*dto.CommentResponse, error) {
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
		return nil, uc.wrap(id, "comentar", err)
	}
	return &dto.CommentResponse{ID: c.ID, Content: c.Content, UserID: c.UserID, CreatedAt: c.CreatedAt}, nil
}

// AddFile sube un adjunto (máximo 10 MiB) y registra la fila en report_files.
func (uc *ReportUseCase) AddFile(ctx context.Context, id, callerID string, file dto.UploadFileInput, body io.Reader) (*dto.ReportFileResponse, error) {
	if file.Size <= 0 || strings.TrimSpace(file.FileName) == "" {
		return nil, domain.NewValidationError("file", "es requerido")
	}
	if file.Size > MaxReportFileSize {
		return nil, domain.NewValidationError("file", "supera el tamaño máximo de 10 MiB")
	}
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f := &entity.ReportFile{
		ID:          uuid.New().String(),
		ReportID:    id,
		FileName:    path.Base(file.FileName),
		ContentType: contentType,
		Size:        file.Size,
		UploadedBy:  callerID,
		CreatedAt:   uc.now().UTC(),
	}
	f.ObjectKey = "reports/" + id + "/" + f.ID + strings.ToLower(path.Ext(f.FileName))
	if err := uc.storage.Put(ctx, f.ObjectKey, body, f.Size, f.ContentType); err != nil {
		return nil, domain.Persistence(entityReport, "guardar el archivo de", err)
	}
	if err := uc.repo.AddFile(ctx, f); err != nil {
		if rmErr := uc.storage.Remove(ctx, f.ObjectKey); rmErr != nil {
			log.Warn().Err(rmErr).Str("key", f.ObjectKey).Msg("no se pudo revertir la subida del adjunto")
		}
		return nil, uc.wrap(id, "adjuntar archivos a", err)
	}
	out := uc.fileResponse(ctx, *f)
	return &out, nil
}

// PDF genera el PDF del reporte con sus comentarios.
func (uc *ReportUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	r, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReportPDF(ctx, r)
}

func (uc *ReportUseCase) find(ctx context.Context, id string) (*entity.Report, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(entityReport, "consultar", err)
	}
	if r == nil {
		return nil, domain.NewNotFound(entityReport, id)
	}
	return r, nil
}

func (uc *ReportUseCase) wrap(id, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(entityReport, id)
	}
	return domain.Persistence(entityReport, op, err)
}

func (uc *ReportUseCase) fileResponse(ctx context.Context, f entity.ReportFile) dto.ReportFileResponse {
	out := dto.ReportFileResponse{
		ID:          f.ID,
		FileName:    f.FileName,
		ContentType: f.ContentType,
		Size:        f.Size,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
	if url, err := uc.storage.URL(ctx, f.ObjectKey); err == nil {
		out.URL = url
	}
	return out
}

func (uc *ReportUseCase) response(ctx context.Context, r *entity.Report) *dto.ReportResponse {
	files := make([]dto.ReportFileResponse, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, uc.fileResponse(ctx, f))
	}
	return &dto.ReportResponse{
		ID:        r.ID,
		Title:     r.Title,
		Activity:  r.Activity,
		Content:   r.Content,
		Status:    string(r.Status),
		UserID:    r.UserID,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Comments:  toCommentResponses(r.Comments),
		Files:     files,
	}
}
