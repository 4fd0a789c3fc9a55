// Package analytics contiene el tablero operativo del día: solicitudes, entregas,
// rondas, reportes y comidas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del día en curso (hora local del servidor).
//
// Fuente de datos: DashboardRepository y MealCountRepository (consultas read-only).
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	meals repository.MealCountRepository
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, meals repository.MealCountRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, meals: meals, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardDTO.
//
// Seis consultas en paralelo; la primera que falle (en orden fijo) define el error:
//  1. solicitudes creadas hoy      4. entregas por estado
//  2. solicitudes por estado       5. rondas de hoy
//  3. entregas creadas hoy         6. reportes de hoy + comidas de hoy
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.now()

	// Hoy: [00:00, 00:00 del día siguiente) en la zona del servidor.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	// Fecha civil (columna DATE) de hoy, como medianoche UTC.
	civil := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type countResult struct {
		n   int
		err error
	}
	type groupResult struct {
		m   map[string]int
		err error
	}
	type mealResult struct {
		meal *entity.MealCount
		err  error
	}

	jobsTodayCh := make(chan countResult, 1)
	jobsStatusCh := make(chan groupResult, 1)
	delTodayCh := make(chan countResult, 1)
	delStatusCh := make(chan groupResult, 1)
	patrolsCh := make(chan countResult, 1)
	reportsCh := make(chan countResult, 1)
	mealCh := make(chan mealResult, 1)

	go func() {
		n, err := uc.repo.CountJobRequestsCreated(ctx, todayStart, todayEnd)
		jobsTodayCh <- countResult{n, err}
	}()
	go func() {
		m, err := uc.repo.CountJobRequestsByStatus(ctx)
		jobsStatusCh <- groupResult{m, err}
	}()
	go func() {
		n, err := uc.repo.CountDeliveriesCreated(ctx, todayStart, todayEnd)
		delTodayCh <- countResult{n, err}
	}()
	go func() {
		m, err := uc.repo.CountDeliveriesByStatus(ctx)
		delStatusCh <- groupResult{m, err}
	}()
	go func() {
		n, err := uc.repo.CountPatrolsCreated(ctx, todayStart, todayEnd)
		patrolsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountReportsOnDate(ctx, civil)
		reportsCh <- countResult{n, err}
	}()
	go func() {
		m, err := uc.meals.GetByDate(ctx, civil)
		mealCh <- mealResult{m, err}
	}()

	jobsToday := <-jobsTodayCh
	jobsStatus := <-jobsStatusCh
	delToday := <-delTodayCh
	delStatus := <-delStatusCh
	patrols := <-patrolsCh
	reports := <-reportsCh
	meal := <-mealCh

	switch {
	case jobsToday.err != nil:
		return nil, fmt.Errorf("dashboard: solicitudes de hoy: %w", jobsToday.err)
	case jobsStatus.err != nil:
		return nil, fmt.Errorf("dashboard: solicitudes por estado: %w", jobsStatus.err)
	case delToday.err != nil:
		return nil, fmt.Errorf("dashboard: entregas de hoy: %w", delToday.err)
	case delStatus.err != nil:
		return nil, fmt.Errorf("dashboard: entregas por estado: %w", delStatus.err)
	case patrols.err != nil:
		return nil, fmt.Errorf("dashboard: rondas de hoy: %w", patrols.err)
	case reports.err != nil:
		return nil, fmt.Errorf("dashboard: reportes de hoy: %w", reports.err)
	case meal.err != nil:
		return nil, fmt.Errorf("dashboard: comidas de hoy: %w", meal.err)
	}

	return &dto.DashboardDTO{
		Date:              civil.Format(entity.DateLayout),
		JobRequestsToday:  jobsToday.n,
		JobRequestsStatus: withKeys(jobsStatus.m, entity.JobStatuses.Strings()),
		DeliveriesToday:   delToday.n,
		DeliveriesStatus:  withKeys(delStatus.m, entity.DeliveryStatuses.Strings()),
		PatrolsToday:      patrols.n,
		ReportsToday:      reports.n,
		Meals:             usecase.ToMealCountResponse(meal.meal, civil),
	}, nil
}

// withKeys garantiza que todos los estados aparezcan, con cero si no hay filas.
func withKeys(m map[string]int, keys []string) map[string]int {
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}
