// Package client es el cliente HTTP de la API de operaciones y el estado de cliente
// (listas cargadas más el último error) que consumen las interfaces de usuario.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
)

// DefaultTimeout tiempo máximo por petición.
const DefaultTimeout = 15 * time.Second

// APIError respuesta de error de la API ({code, message}).
type APIError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%d %s: %s (%s)", e.Status, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente de la API. baseURL incluye el prefijo, ej. http://localhost:8080/api/v1.
type Client struct {
	http *resty.Client
}

// Option configura el cliente.
type Option func(*resty.Client)

// WithToken envía el JWT como Bearer en cada petición.
func WithToken(token string) Option {
	return func(c *resty.Client) {
		if token != "" {
			c.SetAuthToken(token)
		}
	}
}

// WithTimeout reemplaza DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// New construye el cliente. Sin reintentos: cada fallo se informa al llamador.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// SetToken cambia el token usado en las peticiones siguientes.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx).SetError(&dto.ErrorResponse{})
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return toAPIError(resp)
	}
	return nil
}

func toAPIError(resp *resty.Response) *APIError {
	out := &APIError{Status: resp.StatusCode()}
	if e, ok := resp.Error().(*dto.ErrorResponse); ok && e != nil {
		out.Code, out.Message, out.Field = e.Code, e.Message, e.Field
	}
	if out.Code == "" {
		out.Code = http.StatusText(resp.StatusCode())
	}
	if out.Message == "" {
		out.Message = resp.Status()
	}
	return out
}

func pageParams(page, limit int) map[string]string {
	q := map[string]string{}
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	return q
}

// Login autentica y guarda el token para las peticiones siguientes.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// ListJobRequests página de solicitudes de trabajo.
func (c *Client) ListJobRequests(ctx context.Context, page, limit int) (*dto.ListResponse[dto.JobRequestResponse], error) {
	var out dto.ListResponse[dto.JobRequestResponse]
	if err := c.do(ctx, http.MethodGet, "/job-requests", pageParams(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateJobRequest crea una solicitud.
func (c *Client) CreateJobRequest(ctx context.Context, in dto.CreateJobRequestRequest) (*dto.JobRequestResponse, error) {
	var out dto.JobRequestResponse
	if err := c.do(ctx, http.MethodPost, "/job-requests", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJobRequestStatus cambia el estado de una solicitud.
func (c *Client) UpdateJobRequestStatus(ctx context.Context, id, status string) (*dto.JobRequestResponse, error) {
	var out dto.JobRequestResponse
	if err := c.do(ctx, http.MethodPut, "/job-requests/"+id+"/status", nil, dto.StatusUpdateRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJobRequest elimina una solicitud (ADMIN o MANAGER).
func (c *Client) DeleteJobRequest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/job-requests/"+id, nil, nil, nil)
}

// ListDeliveries página de entregas.
func (c *Client) ListDeliveries(ctx context.Context, page, limit int) (*dto.ListResponse[dto.DeliveryResponse], error) {
	var out dto.ListResponse[dto.DeliveryResponse]
	if err := c.do(ctx, http.MethodGet, "/deliveries", pageParams(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeliveryStatus cambia el estado de una entrega.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, id, status string) (*dto.DeliveryResponse, error) {
	var out dto.DeliveryResponse
	if err := c.do(ctx, http.MethodPatch, "/deliveries/"+id+"/status", nil, dto.StatusUpdateRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMealCounts página de conteos de comidas.
func (c *Client) ListMealCounts(ctx context.Context, page, limit int) (*dto.ListResponse[dto.MealCountResponse], error) {
	var out dto.ListResponse[dto.MealCountResponse]
	if err := c.do(ctx, http.MethodGet, "/meal-counts", pageParams(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveMealCount crea o reemplaza el conteo de una fecha.
func (c *Client) SaveMealCount(ctx context.Context, in dto.SaveMealCountRequest) (*dto.MealCountResponse, error) {
	var out dto.MealCountResponse
	if err := c.do(ctx, http.MethodPost, "/meal-counts", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard resumen del día.
func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	var out dto.DashboardDTO
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
