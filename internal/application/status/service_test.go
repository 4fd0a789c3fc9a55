package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	svc   *status.Service
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	f := &fixture{store: s, now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	f.svc = status.NewService(s.JobRequests(), s.Deliveries(), s.Patrols(), s.Reports()).
		WithClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) seedJob(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, f.store.JobRequests().Create(context.Background(), &entity.JobRequest{
		ID: id, Title: "Fuga", Category: "plomería", Priority: entity.PriorityHigh,
		Status: entity.JobOpen, RequestedBy: "u1", CreatedAt: f.now, UpdatedAt: f.now,
	}))
}

func TestUpdateJobRequest_CompletedAtLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedJob(t, "j1")

	job, err := f.svc.UpdateJobRequest(ctx, "j1", "COMPLETED")
	require.NoError(t, err)
	require.NotNil(t, job.CompletedAt)
	completedAt := *job.CompletedAt
	assert.Equal(t, f.now, completedAt)

	// Repetir COMPLETED conserva la marca original.
	f.now = f.now.Add(time.Hour)
	job, err = f.svc.UpdateJobRequest(ctx, "j1", "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, completedAt, *job.CompletedAt)
	assert.Equal(t, f.now, job.UpdatedAt)

	job, err = f.svc.UpdateJobRequest(ctx, "j1", "OPEN")
	require.NoError(t, err)
	assert.Nil(t, job.CompletedAt)

	stored, err := f.store.JobRequests().GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, entity.JobOpen, stored.Status)
	assert.Nil(t, stored.CompletedAt)
}

func TestUpdateJobRequest_InvalidStatusLeavesRowUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedJob(t, "j1")

	_, err := f.svc.UpdateJobRequest(ctx, "j1", "PENDING")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
	assert.Equal(t, []string{"OPEN", "IN_PROGRESS", "COMPLETED", "CANCELLED"}, ve.Allowed)

	stored, err := f.store.JobRequests().GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, entity.JobOpen, stored.Status)
	assert.Equal(t, f.now, stored.UpdatedAt)
}

func TestUpdateJobRequest_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateJobRequest(context.Background(), "missing", "OPEN")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "no se encontró la solicitud de trabajo", nf.Error())
	assert.Equal(t, "missing", nf.ID)
}

func TestUpdateJobRequest_ValidationBeforeLookup(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateJobRequest(context.Background(), "missing", "DONE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdatePatrol_ActiveAlias(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Patrols().Create(ctx, &entity.Patrol{
		ID: "p1", CheckPoint: "Portería", Status: entity.PatrolPending, CheckedBy: "u1",
	}))

	p, err := f.svc.UpdatePatrol(ctx, "p1", "ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, entity.PatrolInProgress, p.Status)

	stored, err := f.store.Patrols().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.PatrolInProgress, stored.Status)

	_, err = f.svc.UpdatePatrol(ctx, "p1", "DONE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.UpdatePatrol(ctx, "nope", "COMPLETED")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, status.EntityPatrol, nf.Entity)
}

func TestUpdateDelivery_AnyToAny(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Deliveries().Create(ctx, &entity.Delivery{
		ID: "d1", TrackingNo: "TRK-1", ItemName: "Caja", Status: entity.DeliveryPending,
	}))

	for _, s := range []string{"DELIVERED", "PENDING", "IN_TRANSIT", "IN_TRANSIT"} {
		d, err := f.svc.UpdateDelivery(ctx, "d1", s)
		require.NoError(t, err, s)
		assert.Equal(t, entity.DeliveryStatus(s), d.Status)
	}

	_, err := f.svc.UpdateDelivery(ctx, "d1", "LOST")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	stored, err := f.store.Deliveries().GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryInTransit, stored.Status)
}

func TestUpdateReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Reports().Create(ctx, &entity.Report{
		ID: "r1", Title: "Turno", Activity: "ronda", Status: entity.ReportDaily, UserID: "u1", Date: f.now,
	}))

	r, err := f.svc.UpdateReport(ctx, "r1", "IMPORTANT")
	require.NoError(t, err)
	assert.Equal(t, entity.ReportImportant, r.Status)

	_, err = f.svc.UpdateReport(ctx, "r1", "WEEKLY")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"DAILY", "HOURLY", "IMPORTANT"}, ve.Allowed)

	_, err = f.svc.UpdateReport(ctx, "zzz", "DAILY")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
