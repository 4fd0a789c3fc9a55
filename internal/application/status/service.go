// Package status aplica cambios de estado a JobRequest, Delivery, Patrol y Report.
//
// Las máquinas de estado son planas: cualquier estado de la enumeración es alcanzable
// desde cualquier otro. Solo se valida pertenencia a la enumeración; el estado actual
// nunca bloquea una transición. Cada cambio es una única actualización de fila.
package status

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

// Nombres legibles usados en los errores específicos por entidad.
const (
	EntityJobRequest = "la solicitud de trabajo"
	EntityDelivery   = "la entrega"
	EntityPatrol     = "la ronda de patrullaje"
	EntityReport     = "el reporte"
)

// Service servicio de transición de estados.
type Service struct {
	jobs       repository.JobRequestRepository
	deliveries repository.DeliveryRepository
	patrols    repository.PatrolRepository
	reports    repository.ReportRepository
	now        func() time.Time
}

// NewService construye el servicio con los puertos de persistencia.
func NewService(
	jobs repository.JobRequestRepository,
	deliveries repository.DeliveryRepository,
	patrols repository.PatrolRepository,
	reports repository.ReportRepository,
) *Service {
	return &Service{jobs: jobs, deliveries: deliveries, patrols: patrols, reports: reports, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// UpdateJobRequest valida newStatus y lo aplica. COMPLETED fija completedAt; cualquier otro estado lo limpia.
func (s *Service) UpdateJobRequest(ctx context.Context, id, newStatus string) (*entity.JobRequest, error) {
	st, err := entity.JobStatuses.Parse(newStatus)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(EntityJobRequest, "consultar", err)
	}
	if job == nil {
		return nil, domain.NewNotFound(EntityJobRequest, id)
	}
	job.ApplyStatus(st, s.now().UTC())
	if err := s.jobs.UpdateStatus(ctx, job.ID, job.Status, job.CompletedAt, job.UpdatedAt); err != nil {
		return nil, s.wrap(EntityJobRequest, id, err)
	}
	return job, nil
}

// UpdateDelivery valida y aplica el estado de una entrega.
func (s *Service) UpdateDelivery(ctx context.Context, id, newStatus string) (*entity.Delivery, error) {
	st, err := entity.DeliveryStatuses.Parse(newStatus)
	if err != nil {
		return nil, err
	}
	d, err := s.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(EntityDelivery, "consultar", err)
	}
	if d == nil {
		return nil, domain.NewNotFound(EntityDelivery, id)
	}
	d.Status = st
	d.UpdatedAt = s.now().UTC()
	if err := s.deliveries.UpdateStatus(ctx, d.ID, d.Status, d.UpdatedAt); err != nil {
		return nil, s.wrap(EntityDelivery, id, err)
	}
	return d, nil
}

// UpdatePatrol valida y aplica el estado de una ronda. ACTIVE se normaliza a IN_PROGRESS.
func (s *Service) UpdatePatrol(ctx context.Context, id, newStatus string) (*entity.Patrol, error) {
	st, err := entity.PatrolStatuses.Parse(newStatus)
	if err != nil {
		return nil, err
	}
	p, err := s.patrols.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(EntityPatrol, "consultar", err)
	}
	if p == nil {
		return nil, domain.NewNotFound(EntityPatrol, id)
	}
	p.Status = st
	p.UpdatedAt = s.now().UTC()
	if err := s.patrols.UpdateStatus(ctx, p.ID, p.Status, p.UpdatedAt); err != nil {
		return nil, s.wrap(EntityPatrol, id, err)
	}
	return p, nil
}

// UpdateReport valida y aplica el estado (clasificación) de un reporte.
func (s *Service) UpdateReport(ctx context.Context, id, newStatus string) (*entity.Report, error) {
	st, err := entity.ReportStatuses.Parse(newStatus)
	if err != nil {
		return nil, err
	}
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence(EntityReport, "consultar", err)
	}
	if r == nil {
		return nil, domain.NewNotFound(EntityReport, id)
	}
	r.Status = st
	r.UpdatedAt = s.now().UTC()
	if err := s.reports.UpdateStatus(ctx, r.ID, r.Status, r.UpdatedAt); err != nil {
		return nil, s.wrap(EntityReport, id, err)
	}
	return r, nil
}

// wrap traduce ErrNotFound (fila borrada entre lectura y escritura) al error específico.
func (s *Service) wrap(entityName, id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(entityName, id)
	}
	return domain.Persistence(entityName, "actualizar el estado de", err)
}
