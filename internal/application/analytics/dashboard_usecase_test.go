package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/analytics"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

func TestGetSummary_CountsToday(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	yesterday := now.AddDate(0, 0, -1)
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.JobRequests().Create(ctx, &entity.JobRequest{ID: "j1", Status: entity.JobOpen, CreatedAt: now}))
	require.NoError(t, s.JobRequests().Create(ctx, &entity.JobRequest{ID: "j2", Status: entity.JobCompleted, CreatedAt: yesterday}))
	require.NoError(t, s.Deliveries().Create(ctx, &entity.Delivery{ID: "d1", TrackingNo: "T1", Status: entity.DeliveryInTransit, CreatedAt: now}))
	require.NoError(t, s.Patrols().Create(ctx, &entity.Patrol{ID: "p1", CreatedAt: now}))
	require.NoError(t, s.Patrols().Create(ctx, &entity.Patrol{ID: "p2", CreatedAt: yesterday}))
	require.NoError(t, s.Reports().Create(ctx, &entity.Report{ID: "r1", Date: today}))
	require.NoError(t, s.MealCounts().Upsert(ctx, &entity.MealCount{ID: "m1", Date: today, Breakfast: 10, Lunch: 20, Dinner: 15}))

	uc := analytics.NewDashboardUseCase(s.Dashboard(), s.MealCounts()).WithClock(func() time.Time { return now })
	out, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", out.Date)
	assert.Equal(t, 1, out.JobRequestsToday)
	assert.Equal(t, map[string]int{"OPEN": 1, "IN_PROGRESS": 0, "COMPLETED": 1, "CANCELLED": 0}, out.JobRequestsStatus)
	assert.Equal(t, 1, out.DeliveriesToday)
	assert.Equal(t, map[string]int{"PENDING": 0, "IN_TRANSIT": 1, "DELIVERED": 0}, out.DeliveriesStatus)
	assert.Equal(t, 1, out.PatrolsToday)
	assert.Equal(t, 1, out.ReportsToday)
	assert.Equal(t, 45, out.Meals.Total)
}

func TestGetSummary_EmptyDayHasZeroMeals(t *testing.T) {
	s := memory.NewStore()
	uc := analytics.NewDashboardUseCase(s.Dashboard(), s.MealCounts()).WithClock(func() time.Time { return now })

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", out.Meals.Date)
	assert.Zero(t, out.Meals.Total)
	assert.Len(t, out.JobRequestsStatus, 4)
}

type failingDashboard struct{ *memory.DashboardRepo }

func (failingDashboard) CountDeliveriesByStatus(context.Context) (map[string]int, error) {
	return nil, errors.New("timeout")
}

func TestGetSummary_PropagatesFirstError(t *testing.T) {
	s := memory.NewStore()
	uc := analytics.NewDashboardUseCase(failingDashboard{s.Dashboard()}, s.MealCounts())

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entregas por estado")
}
