package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakeExporter struct {
	jobs  []*entity.JobRequest
	meals []*entity.MealCount
}

func (f *fakeExporter) ExportJobRequests(_ context.Context, jobs []*entity.JobRequest) ([]byte, error) {
	f.jobs = jobs
	return []byte("xlsx"), nil
}

func (f *fakeExporter) ExportMealCounts(_ context.Context, meals []*entity.MealCount) ([]byte, error) {
	f.meals = meals
	return []byte("xlsx"), nil
}

type fakeStorage struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failPut    bool
	failRemove bool
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string][]byte{}} }

func (s *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.failPut {
		return errors.New("bucket no disponible")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = b
	return nil
}

func (s *fakeStorage) URL(_ context.Context, key string) (string, error) {
	return "/files/" + key, nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	if s.failRemove {
		return errors.New("bucket no disponible")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func newStatuses(s *memory.Store) *status.Service {
	return status.NewService(s.JobRequests(), s.Deliveries(), s.Patrols(), s.Reports()).WithClock(clock)
}

func ptr[T any](v T) *T { return &v }

func seedUser(t *testing.T, s *memory.Store, id string) {
	t.Helper()
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: id, Name: "Ana", Email: id + "@ops.co", Role: entity.RoleUser, CreatedAt: fixedNow,
	}))
}

func TestJobRequestUseCase_CreateAlwaysOpen(t *testing.T) {
	s := memory.NewStore()
	uc := NewJobRequestUseCase(s.JobRequests(), memory.NewTxRunner(s), newStatuses(s), &fakeExporter{})
	uc.now = clock

	out, err := uc.Create(context.Background(), dto.CreateJobRequestRequest{
		Title:       "Fuga",
		Description: "agua en baño 2",
		Priority:    "HIGH",
		Status:      "COMPLETED",
		Category:    "plomería",
		RequestedBy: "u1",
		DueDate:     ptr("2024-01-20"),
		Comment:     ptr("  revisar hoy  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "OPEN", out.Status)
	assert.Equal(t, "HIGH", out.Priority)
	assert.Nil(t, out.CompletedAt)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), *out.DueDate)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, "revisar hoy", out.Comments[0].Content)
	assert.Equal(t, "u1", out.Comments[0].UserID)

	stored, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 1)
}

func TestJobRequestUseCase_CreateValidation(t *testing.T) {
	s := memory.NewStore()
	uc := NewJobRequestUseCase(s.JobRequests(), memory.NewTxRunner(s), newStatuses(s), &fakeExporter{})

	_, err := uc.Create(context.Background(), dto.CreateJobRequestRequest{Title: "x", Priority: "HIGH"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)

	_, err = uc.Create(context.Background(), dto.CreateJobRequestRequest{
		Title: "x", Description: "y", Category: "z", RequestedBy: "u1", Priority: "CRITICAL",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "priority", ve.Field)
	assert.Equal(t, []string{"LOW", "MEDIUM", "HIGH", "URGENT"}, ve.Allowed)

	_, err = uc.Create(context.Background(), dto.CreateJobRequestRequest{
		Title: "x", Description: "y", Category: "z", RequestedBy: "u1", Priority: "LOW", DueDate: ptr("mañana"),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dueDate", ve.Field)

	n, err := s.JobRequests().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestJobRequestUseCase_StatusAndComments(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewJobRequestUseCase(s.JobRequests(), memory.NewTxRunner(s), newStatuses(s), &fakeExporter{})
	uc.now = clock

	job, err := uc.Create(ctx, dto.CreateJobRequestRequest{
		Title: "Luz", Description: "pasillo", Priority: "LOW", Category: "eléctrico", RequestedBy: "u1",
	})
	require.NoError(t, err)

	done, err := uc.UpdateStatus(ctx, job.ID, "COMPLETED")
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, fixedNow, *done.CompletedAt)

	c, err := uc.AddComment(ctx, job.ID, "u9", dto.CommentRequest{Content: "listo"})
	require.NoError(t, err)
	assert.Equal(t, "u9", c.UserID)

	_, err = uc.AddComment(ctx, "missing", "u9", dto.CommentRequest{Content: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, job.ID))
	_, err = uc.GetByID(ctx, job.ID)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, entityJobRequest, nf.Entity)
}

func TestJobRequestUseCase_ExportCollectsAllPages(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	exp := &fakeExporter{}
	uc := NewJobRequestUseCase(s.JobRequests(), memory.NewTxRunner(s), newStatuses(s), exp)

	for i := 0; i < dto.MaxLimit+5; i++ {
		require.NoError(t, s.JobRequests().Create(ctx, &entity.JobRequest{ID: fmt.Sprintf("job-%03d", i)}))
	}
	data, err := uc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Len(t, exp.jobs, dto.MaxLimit+5)
}

func TestMealCountUseCase_SaveUpsertsByDate(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewMealCountUseCase(s.MealCounts(), &fakeExporter{})
	uc.now = clock

	first, err := uc.Save(ctx, dto.SaveMealCountRequest{Date: "2024-01-15", Breakfast: ptr(10), Lunch: ptr(20), Dinner: ptr(15)})
	require.NoError(t, err)
	assert.Equal(t, 45, first.Total)

	uc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	second, err := uc.Save(ctx, dto.SaveMealCountRequest{Date: "2024-01-15", Breakfast: ptr(12), Lunch: ptr(20), Dinner: ptr(15)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 47, second.Total)
	assert.Equal(t, fixedNow, second.CreatedAt)

	list, err := uc.List(ctx, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Pagination.TotalItems)

	got, err := uc.GetByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Breakfast)

	empty, err := uc.GetByDate(ctx, "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, dto.MealCountResponse{Date: "2024-02-01"}, *empty)
}

func TestMealCountUseCase_SaveValidation(t *testing.T) {
	uc := NewMealCountUseCase(memory.NewStore().MealCounts(), &fakeExporter{})
	ctx := context.Background()

	_, err := uc.Save(ctx, dto.SaveMealCountRequest{Date: "2024-01-15", Breakfast: ptr(1), Lunch: ptr(1)})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dinner", ve.Field)

	_, err = uc.Save(ctx, dto.SaveMealCountRequest{Date: "15/01/2024", Breakfast: ptr(1), Lunch: ptr(1), Dinner: ptr(1)})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "date", ve.Field)

	_, err = uc.Save(ctx, dto.SaveMealCountRequest{Date: "2024-01-15", Breakfast: ptr(1), Lunch: ptr(-1), Dinner: ptr(1)})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "lunch", ve.Field)
}

func TestMealCountUseCase_ExportRange(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	exp := &fakeExporter{}
	uc := NewMealCountUseCase(s.MealCounts(), exp)
	uc.now = clock

	for _, d := range []string{"2023-12-01", "2024-01-10", "2024-01-14"} {
		_, err := uc.Save(ctx, dto.SaveMealCountRequest{Date: d, Breakfast: ptr(1), Lunch: ptr(2), Dinner: ptr(3)})
		require.NoError(t, err)
	}

	_, err := uc.Export(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, exp.meals, 2, "por defecto los últimos 30 días")

	_, err = uc.Export(ctx, "2023-11-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, exp.meals, 3)

	_, err = uc.Export(ctx, "2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(ctx, "2020-01-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPatrolUseCase_CreateAndActiveAlias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedUser(t, s, "u1")
	uc := NewPatrolUseCase(s.Patrols(), s.Users(), newStatuses(s), newFakeStorage())
	uc.now = clock

	p, err := uc.Create(ctx, dto.CreatePatrolRequest{
		CheckPoint: "Portería norte", Status: "PENDING", CheckedBy: "u1", PropertyID: "torre-a", TotalCheckPoint: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", p.Status)

	p, err = uc.UpdateStatus(ctx, p.ID, "ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", p.Status)

	_, err = uc.Create(ctx, dto.CreatePatrolRequest{
		CheckPoint: "x", Status: "PENDING", CheckedBy: "ghost", PropertyID: "p", TotalCheckPoint: ptr(1),
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "checkedBy", ve.Field)

	_, err = uc.Create(ctx, dto.CreatePatrolRequest{
		CheckPoint: "x", Status: "DONE", CheckedBy: "u1", PropertyID: "p", TotalCheckPoint: ptr(1),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"PENDING", "IN_PROGRESS", "COMPLETED"}, ve.Allowed)
}

func TestPatrolUseCase_UploadImageReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedUser(t, s, "u1")
	files := newFakeStorage()
	uc := NewPatrolUseCase(s.Patrols(), s.Users(), newStatuses(s), files)

	p, err := uc.Create(ctx, dto.CreatePatrolRequest{
		CheckPoint: "Sótano", Status: "PENDING", CheckedBy: "u1", PropertyID: "torre-b", TotalCheckPoint: ptr(2),
	})
	require.NoError(t, err)

	img := []byte("\x89PNG fake")
	in := dto.UploadFileInput{FileName: "foto.PNG", ContentType: "image/png", Size: int64(len(img))}
	first, err := uc.UploadImage(ctx, p.ID, in, bytes.NewReader(img))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ImagePath, "patrols/"+p.ID+"/"))
	assert.True(t, strings.HasSuffix(first.ImagePath, ".png"))
	assert.Equal(t, "/files/"+first.ImagePath, first.ImageURL)

	second, err := uc.UploadImage(ctx, p.ID, in, bytes.NewReader(img))
	require.NoError(t, err)
	assert.NotEqual(t, first.ImagePath, second.ImagePath)
	assert.Len(t, files.objects, 1)
	assert.Contains(t, files.objects, second.ImagePath)

	_, err = uc.UploadImage(ctx, p.ID, dto.UploadFileInput{FileName: "a.txt", ContentType: "text/plain", Size: 3}, strings.NewReader("abc"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	files.failPut = true
	_, err = uc.UploadImage(ctx, p.ID, in, bytes.NewReader(img))
	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)

	require.NoError(t, uc.Delete(ctx, p.ID))
	assert.Empty(t, files.objects)
}

func TestDeliveryUseCase_CreateDefaultsAndDuplicate(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewDeliveryUseCase(s.Deliveries(), newStatuses(s))
	uc.now = clock

	w := decimal.RequireFromString("2.5")
	d, err := uc.Create(ctx, "caller", dto.CreateDeliveryRequest{
		TrackingNo: " TRK-100 ", ItemName: "Caja", ReceiverName: "Luis", Weight: &w,
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", d.Status)
	assert.Equal(t, "caller", d.UserID)
	assert.Equal(t, "TRK-100", d.TrackingNo)

	_, err = uc.Create(ctx, "caller", dto.CreateDeliveryRequest{TrackingNo: "TRK-100", ItemName: "Otra", ReceiverName: "Eva"})
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "trackingNo", dup.Field)

	neg := decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, "caller", dto.CreateDeliveryRequest{TrackingNo: "TRK-101", ItemName: "x", ReceiverName: "y", Weight: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "caller", dto.CreateDeliveryRequest{TrackingNo: "TRK-102", ItemName: "x", ReceiverName: "y", Status: "LOST"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	upd, err := uc.UpdateStatus(ctx, d.ID, "DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", upd.Status)
}

func TestDeliveryUseCase_ListPagination(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewDeliveryUseCase(s.Deliveries(), newStatuses(s))
	for i := 0; i < 25; i++ {
		_, err := uc.Create(ctx, "u1", dto.CreateDeliveryRequest{
			TrackingNo: "T-" + string(rune('A'+i)), ItemName: "item", ReceiverName: "r",
		})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, dto.PageQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, dto.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNextPage: false, HasPrevPage: true}, page.Pagination)

	beyond, err := uc.List(ctx, dto.PageQuery{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Data)
	assert.NotNil(t, beyond.Data)
}

func TestJobRequestUseCase_ListHugePageIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := NewJobRequestUseCase(s.JobRequests(), memory.NewTxRunner(s), newStatuses(s), &fakeExporter{})
	uc.now = clock
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, dto.CreateJobRequestRequest{
			Title: fmt.Sprintf("trabajo %d", i), Description: "d", Priority: "LOW", Category: "c", RequestedBy: "u1",
		})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, dto.PageQuery{Page: math.MaxInt, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.NotNil(t, out.Data)
	assert.Equal(t, 1, out.Pagination.TotalPages)
	assert.Equal(t, 3, out.Pagination.TotalItems)
	assert.False(t, out.Pagination.HasNextPage)
}

func TestReportUseCase_DeleteToleratesStorageFailure(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	files := newFakeStorage()
	uc := NewReportUseCase(s.Reports(), newStatuses(s), files, nil)
	uc.now = clock

	rep, err := uc.Create(ctx, "u1", dto.CreateReportRequest{
		Title: "Ronda nocturna", Activity: "vigilancia", Content: "sin novedad", Status: "DAILY", Date: "2024-01-15",
	})
	require.NoError(t, err)
	body := []byte("adjunto")
	_, err = uc.AddFile(ctx, rep.ID, "u1", dto.UploadFileInput{FileName: "acta.txt", ContentType: "text/plain", Size: int64(len(body))}, bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, files.objects, 1)

	files.failRemove = true
	require.NoError(t, uc.Delete(ctx, rep.ID))

	_, err = uc.GetByID(ctx, rep.ID)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Len(t, files.objects, 1, "el objeto queda huérfano pero el reporte se elimina")
}
