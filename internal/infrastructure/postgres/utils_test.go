package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// invalidUUIDQuerier responde a todo como PostgreSQL ante un id que no es UUID (22P02).
type invalidUUIDQuerier struct{ calls int }

var errInvalidUUID = &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

func (q *invalidUUIDQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, errInvalidUUID
}

func (q *invalidUUIDQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errInvalidUUID
}

func (q *invalidUUIDQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errInvalidUUID }

func TestValidID(t *testing.T) {
	assert.True(t, validID("3f2b8c1e-9a4d-4e7b-8c2f-1a2b3c4d5e6f"))
	assert.False(t, validID("xyz"))
	assert.False(t, validID("ghost"))
	assert.False(t, validID(""))
}

func TestRepositories_NonUUIDIDNeverReachesDatabase(t *testing.T) {
	ctx := context.Background()
	q := &invalidUUIDQuerier{}

	u, err := NewUserRepository(q).GetByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)

	j, err := NewJobRequestRepository(q).GetByID(ctx, "xyz")
	require.NoError(t, err)
	assert.Nil(t, j)

	assert.ErrorIs(t, NewDeliveryRepository(q).UpdateStatus(ctx, "xyz", entity.DeliveryDelivered, time.Now()), domain.ErrNotFound)
	assert.ErrorIs(t, NewPatrolRepository(q).Delete(ctx, "xyz"), domain.ErrNotFound)
	assert.ErrorIs(t, NewReportRepository(q).AddComment(ctx, &entity.Comment{ParentID: "xyz"}), domain.ErrNotFound)

	err = NewEmployeeRepository(q).Create(ctx, &entity.Employee{ID: "3f2b8c1e-9a4d-4e7b-8c2f-1a2b3c4d5e6f", CompanyID: "acme"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "companyId", ve.Field)

	assert.Zero(t, q.calls)
}

// El store en memoria acepta cualquier id, por eso este caso se prueba contra los repositorios de PostgreSQL.
func TestUseCases_NonUUIDIDMapsToClientErrors(t *testing.T) {
	ctx := context.Background()
	q := &invalidUUIDQuerier{}
	jobs, deliveries := NewJobRequestRepository(q), NewDeliveryRepository(q)
	patrols, reports := NewPatrolRepository(q), NewReportRepository(q)
	statuses := status.NewService(jobs, deliveries, patrols, reports)

	_, err := statuses.UpdateJobRequest(ctx, "xyz", "COMPLETED")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)

	_, err = statuses.UpdateDelivery(ctx, "xyz", "DELIVERED")
	require.ErrorAs(t, err, &nf)

	uc := usecase.NewPatrolUseCase(patrols, NewUserRepository(q), statuses, nil)
	_, err = uc.Create(ctx, dto.CreatePatrolRequest{
		CheckPoint: "Portería", Status: "PENDING", CheckedBy: "ghost", PropertyID: "torre-a", TotalCheckPoint: ptrInt(1),
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "checkedBy", ve.Field)

	var pe *domain.PersistenceError
	assert.NotErrorAs(t, err, &pe)
	assert.Zero(t, q.calls)
}

func ptrInt(v int) *int { return &v }
