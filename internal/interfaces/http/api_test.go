package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/bootstrap"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/cache"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/opsdesk-api/internal/interfaces/http"
)

const prefix = "/api/v1"

type testAPI struct {
	t   *testing.T
	app *fiber.App
	ucs *bootstrap.UseCases
}

// newTestAPI levanta la API completa sobre el almacén en memoria y disco temporal.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir(), prefix+"/files")
	require.NoError(t, err)

	repos := bootstrap.MemoryRepositories(memory.NewStore())
	ucs := bootstrap.NewUseCases(repos, files, cache.NewMemoryRevoker(), auth.JWTConfig{
		Secret: testJWTSecret,
		Issuer: testIssuer,
	}, "opsdesk-test")

	app := apphttp.NewApp("opsdesk-test")
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       ucs.Auth,
		JobRequestUC: ucs.JobRequest,
		DeliveryUC:   ucs.Delivery,
		PatrolUC:     ucs.Patrol,
		ReportUC:     ucs.Report,
		MealCountUC:  ucs.MealCount,
		CompanyUC:    ucs.Company,
		UserUC:       ucs.User,
		DashboardUC:  ucs.Dashboard,
		APIPrefix:    prefix,
		FilesDir:     files.Dir(),
	})
	return &testAPI{t: t, app: app, ucs: ucs}
}

func (a *testAPI) send(req *http.Request) (*http.Response, []byte) {
	a.t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp, body
}

func (a *testAPI) do(method, path, token string, payload any) (*http.Response, []byte) {
	a.t.Helper()
	var r io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(p)
	default:
		b, err := json.Marshal(p)
		require.NoError(a.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, prefix+path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.send(req)
}

// register crea un usuario USER y devuelve su token e id.
func (a *testAPI) register(name, email string) (string, string) {
	a.t.Helper()
	resp, body := a.do(http.MethodPost, "/register", "", dto.RegisterRequest{Name: name, Email: email, Password: "password123"})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(a.t, json.Unmarshal(body, &out))
	return out.Token, out.User.ID
}

// admin crea un ADMIN directo en el caso de uso e inicia sesión.
func (a *testAPI) admin() string {
	a.t.Helper()
	_, err := a.ucs.Auth.CreateAdmin(context.Background(), dto.RegisterRequest{Name: "Admin", Email: "admin@opsdesk.test", Password: "password123"})
	require.NoError(a.t, err)
	resp, body := a.do(http.MethodPost, "/login", "", dto.LoginRequest{Email: "admin@opsdesk.test", Password: "password123"})
	require.Equal(a.t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(a.t, json.Unmarshal(body, &out))
	return out.Token
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestAuthFlow_RegisterLoginVerifyLogout(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodPost, "/register", "", dto.RegisterRequest{Name: "Ana", Email: "Ana@Example.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	reg := decode[dto.LoginResponse](t, body)
	assert.Equal(t, "ana@example.com", reg.User.Email)
	assert.Equal(t, "USER", reg.User.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), reg.ExpiresAt, time.Minute)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.TokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "el registro debe emitir la cookie token")
	assert.True(t, cookie.HttpOnly)

	resp, _ = api.do(http.MethodPost, "/register", "", dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "password123"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = api.do(http.MethodPost, "/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, body)
	assert.WithinDuration(t, time.Now().Add(time.Hour), login.ExpiresAt, time.Minute)

	// verify con la cookie
	req := httptest.NewRequest(http.MethodGet, prefix+"/verify", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.TokenCookie, Value: login.Token})
	resp, body = api.send(req)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, reg.User.ID, decode[dto.UserResponse](t, body).ID)

	resp, _ = api.do(http.MethodPost, "/logout", login.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/verify", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = api.do(http.MethodGet, "/job-requests", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_ValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(http.MethodPost, "/register", "", `{"name":"x","email":"x@x.com","password":"corta"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "password", decode[dto.ErrorResponse](t, body).Field)

	resp, body = api.do(http.MethodPost, "/register", "", `{"name":"x","email":"x@x.com","password":"password123","role":"ADMIN"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Equal(t, "role", errBody.Field, "los campos desconocidos se rechazan")

	resp, _ = api.do(http.MethodPost, "/register", "", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJobRequest_CreateAlwaysOpen(t *testing.T) {
	api := newTestAPI(t)
	token, userID := api.register("Ana", "ana@example.com")

	resp, body := api.do(http.MethodPost, "/job-requests", token, map[string]any{
		"title":       "Cambiar luminaria",
		"description": "Pasillo 3 sin luz",
		"priority":    "HIGH",
		"category":    "ELECTRICO",
		"status":      "COMPLETED",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	job := decode[dto.JobRequestResponse](t, body)
	assert.Equal(t, "OPEN", job.Status)
	assert.Equal(t, "HIGH", job.Priority)
	assert.Equal(t, userID, job.RequestedBy, "requestedBy por defecto es el usuario del token")
	assert.Nil(t, job.CompletedAt)

	resp, body = api.do(http.MethodPost, "/job-requests", token, map[string]any{
		"title": "x", "description": "y", "category": "z", "priority": "CRITICAL",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "priority", errBody.Field)
	assert.Equal(t, []string{"LOW", "MEDIUM", "HIGH", "URGENT"}, errBody.Allowed)
}

func TestJobRequest_StatusCompletedAtLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")
	_, body := api.do(http.MethodPost, "/job-requests", token, map[string]any{
		"title": "t", "description": "d", "priority": "LOW", "category": "c",
	})
	id := decode[dto.JobRequestResponse](t, body).ID

	resp, body := api.do(http.MethodPut, "/job-requests/"+id+"/status", token, dto.StatusUpdateRequest{Status: "COMPLETED"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	raw := decode[map[string]any](t, body)
	assert.Equal(t, "COMPLETED", raw["status"])
	assert.NotNil(t, raw["completedAt"])

	resp, body = api.do(http.MethodPatch, "/job-requests/"+id+"/status", token, dto.StatusUpdateRequest{Status: "OPEN"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw = decode[map[string]any](t, body)
	assert.Equal(t, "OPEN", raw["status"])
	assert.Nil(t, raw["completedAt"])

	// un estado fuera de la enumeración no modifica la fila
	resp, body = api.do(http.MethodPut, "/job-requests/"+id+"/status", token, dto.StatusUpdateRequest{Status: "PENDING"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"OPEN", "IN_PROGRESS", "COMPLETED", "CANCELLED"}, decode[dto.ErrorResponse](t, body).Allowed)

	_, body = api.do(http.MethodGet, "/job-requests/"+id, token, nil)
	assert.Equal(t, "OPEN", decode[dto.JobRequestResponse](t, body).Status)

	resp, body = api.do(http.MethodPut, "/job-requests/no-existe/status", token, dto.StatusUpdateRequest{Status: "OPEN"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Message, "solicitud de trabajo")
}

func TestDeliveries_PaginationAndDuplicates(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")

	for i := 1; i <= 25; i++ {
		resp, body := api.do(http.MethodPost, "/deliveries", token, map[string]any{
			"trackingNo":   fmt.Sprintf("TRK-%03d", i),
			"itemName":     "Caja",
			"receiverName": "Luis",
			"weight":       "1.5",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := api.do(http.MethodGet, "/deliveries?page=3&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.ListResponse[dto.DeliveryResponse]](t, body)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, dto.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNextPage: false, HasPrevPage: true}, page.Pagination)
	assert.Equal(t, "TRK-021", page.Data[0].TrackingNo)
	assert.Equal(t, "PENDING", page.Data[0].Status)

	_, body = api.do(http.MethodGet, "/deliveries?page=9", token, nil)
	beyond := decode[dto.ListResponse[dto.DeliveryResponse]](t, body)
	assert.Empty(t, beyond.Data)
	assert.Equal(t, 25, beyond.Pagination.TotalItems)
	assert.Contains(t, string(body), `"data":[]`)

	resp, body = api.do(http.MethodPost, "/deliveries", token, map[string]any{
		"trackingNo": "TRK-001", "itemName": "Caja", "receiverName": "Luis",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "trackingNo", decode[dto.ErrorResponse](t, body).Field)

	id := page.Data[0].ID
	resp, body = api.do(http.MethodPatch, "/deliveries/"+id+"/status", token, dto.StatusUpdateRequest{Status: "IN_TRANSIT"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "IN_TRANSIT", decode[dto.DeliveryResponse](t, body).Status)
}

func TestDelete_RequiresAdminOrManager(t *testing.T) {
	api := newTestAPI(t)
	userToken, _ := api.register("Ana", "ana@example.com")
	adminToken := api.admin()

	_, body := api.do(http.MethodPost, "/job-requests", userToken, map[string]any{
		"title": "t", "description": "d", "priority": "MEDIUM", "category": "c",
	})
	id := decode[dto.JobRequestResponse](t, body).ID

	resp, _ := api.do(http.MethodDelete, "/job-requests/"+id, userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = api.do(http.MethodDelete, "/job-requests/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/job-requests/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(http.MethodGet, "/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, body = api.do(http.MethodGet, "/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ListResponse[dto.UserResponse]](t, body).Pagination.TotalItems)
}

func TestMealCounts_UpsertByDate(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")

	resp, body := api.do(http.MethodPost, "/meal-counts", token, map[string]any{"date": "2025-01-01", "breakfast": 10, "lunch": 20, "dinner": 15})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	first := decode[dto.MealCountResponse](t, body)
	assert.Equal(t, 45, first.Total)

	resp, body = api.do(http.MethodPost, "/meal-counts", token, map[string]any{"date": "2025-01-01", "breakfast": 12, "lunch": 20, "dinner": 15})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[dto.MealCountResponse](t, body)
	assert.Equal(t, first.ID, second.ID)

	_, body = api.do(http.MethodGet, "/meal-counts", token, nil)
	list := decode[dto.ListResponse[dto.MealCountResponse]](t, body)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 12, list.Data[0].Breakfast)

	_, body = api.do(http.MethodGet, "/meal-counts/2025-01-01", token, nil)
	assert.Equal(t, 12, decode[dto.MealCountResponse](t, body).Breakfast)

	_, body = api.do(http.MethodGet, "/meal-counts/2025-02-01", token, nil)
	assert.Equal(t, 0, decode[dto.MealCountResponse](t, body).Total)

	resp, _ = api.do(http.MethodGet, "/meal-counts/01-02-2025", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = api.do(http.MethodPost, "/meal-counts", token, map[string]any{"date": "2025-01-02", "breakfast": -1, "lunch": 0, "dinner": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "breakfast", decode[dto.ErrorResponse](t, body).Field)

	resp, _ = api.do(http.MethodGet, "/meal-counts/export?from=2025-01-01&to=2025-01-31", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
}

func TestPatrols_CheckedByMustExist(t *testing.T) {
	api := newTestAPI(t)
	token, userID := api.register("Ana", "ana@example.com")

	resp, body := api.do(http.MethodPost, "/patrols", token, map[string]any{
		"checkPoint": "Portería", "status": "PENDING", "checkedBy": "no-existe",
		"propertyId": "P-1", "totalCheckPoint": 4,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "checkedBy", decode[dto.ErrorResponse](t, body).Field)

	_, body = api.do(http.MethodGet, "/patrols", token, nil)
	assert.Equal(t, 0, decode[dto.ListResponse[dto.PatrolResponse]](t, body).Pagination.TotalItems)

	resp, body = api.do(http.MethodPost, "/patrols", token, map[string]any{
		"checkPoint": "Portería", "status": "ACTIVE", "checkedBy": userID,
		"propertyId": "P-1", "totalCheckPoint": 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	patrol := decode[dto.PatrolResponse](t, body)
	assert.Equal(t, "IN_PROGRESS", patrol.Status, "ACTIVE es sinónimo de IN_PROGRESS")

	resp, body = api.do(http.MethodPatch, "/patrols/"+patrol.ID, token, map[string]any{"notes": "sin novedad", "status": "COMPLETED"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[dto.PatrolResponse](t, body)
	assert.Equal(t, "COMPLETED", updated.Status)
	assert.Equal(t, "sin novedad", updated.Notes)
}

func TestPatrols_UploadImage(t *testing.T) {
	api := newTestAPI(t)
	token, userID := api.register("Ana", "ana@example.com")
	_, body := api.do(http.MethodPost, "/patrols", token, map[string]any{
		"checkPoint": "Portería", "status": "PENDING", "checkedBy": userID,
		"propertyId": "P-1", "totalCheckPoint": 1,
	})
	id := decode[dto.PatrolResponse](t, body).ID

	image := []byte("\x89PNG\r\n\x1a\nfake")
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="foto.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, prefix+"/patrols/"+id+"/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, body := api.send(req)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	patrol := decode[dto.PatrolResponse](t, body)
	require.NotEmpty(t, patrol.ImageURL)

	resp, got := api.do(http.MethodGet, patrol.ImageURL[len(prefix):], token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, image, got)

	resp, _ = api.do(http.MethodGet, patrol.ImageURL[len(prefix):], "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "los archivos requieren sesión")
}

func TestReports_CommentsFilterAndPDF(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")

	resp, body := api.do(http.MethodPost, "/reports", token, map[string]any{
		"title": "Turno noche", "activity": "Ronda", "content": "Sin novedades", "status": "DAILY", "date": "2025-03-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := decode[dto.ReportResponse](t, body).ID

	resp, body = api.do(http.MethodPost, "/reports/"+id+"/comments", token, dto.CommentRequest{Content: "Revisado"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = api.do(http.MethodPut, "/reports/"+id+"/status", token, dto.StatusUpdateRequest{Status: "IMPORTANT"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "IMPORTANT", decode[dto.ReportResponse](t, body).Status)

	_, body = api.do(http.MethodGet, "/reports?date=2025-03-10", token, nil)
	list := decode[dto.ListResponse[dto.ReportResponse]](t, body)
	require.Len(t, list.Data, 1)
	assert.Equal(t, id, list.Data[0].ID)

	_, body = api.do(http.MethodGet, "/reports/"+id, token, nil)
	assert.Len(t, decode[dto.ReportResponse](t, body).Comments, 1)

	_, body = api.do(http.MethodGet, "/reports?date=2025-03-11", token, nil)
	assert.Empty(t, decode[dto.ListResponse[dto.ReportResponse]](t, body).Data)

	resp, pdf := api.do(http.MethodGet, "/reports/"+id+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestEmployees_FilterByCompany(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")

	resp, body := api.do(http.MethodPost, "/companies", token, dto.CreateCompanyRequest{Name: "aseo total"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	company := decode[dto.CompanyResponse](t, body)
	assert.Equal(t, "Aseo Total", company.Name)

	resp, _ = api.do(http.MethodPost, "/employees", token, dto.CreateEmployeeRequest{Name: "luis pérez", Position: "Operario", CompanyID: company.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = api.do(http.MethodPost, "/employees", token, dto.CreateEmployeeRequest{Name: "otro", Position: "Operario", CompanyID: "no-existe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "companyId", decode[dto.ErrorResponse](t, body).Field)

	_, body = api.do(http.MethodGet, "/employees?company="+company.ID, token, nil)
	list := decode[dto.ListResponse[dto.EmployeeResponse]](t, body)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Luis Pérez", list.Data[0].Name)
}

func TestDashboard_TodayCounts(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("Ana", "ana@example.com")
	api.do(http.MethodPost, "/job-requests", token, map[string]any{
		"title": "t", "description": "d", "priority": "LOW", "category": "c",
	})

	resp, body := api.do(http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	dash := decode[dto.DashboardDTO](t, body)
	assert.Equal(t, 1, dash.JobRequestsToday)
	assert.Equal(t, 1, dash.JobRequestsStatus["OPEN"])
	assert.Equal(t, 0, dash.JobRequestsStatus["COMPLETED"])
	assert.Equal(t, 0, dash.Meals.Total)
}

func TestUnknownRoute_ReturnsJSONError(t *testing.T) {
	api := newTestAPI(t)
	resp, body := api.send(httptest.NewRequest(http.MethodGet, "/no-existe", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
