package client

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
)

// State snapshot inmutable de lo que muestra una interfaz: listas cargadas, su paginación
// y el último error. Los comandos de Store nunca modifican un State recibido.
type State struct {
	JobRequests        []dto.JobRequestResponse
	JobPagination      dto.Pagination
	Deliveries         []dto.DeliveryResponse
	DeliveryPagination dto.Pagination
	MealCounts         []dto.MealCountResponse
	MealPagination     dto.Pagination
	Error              string
}

// Page página solicitada al recargar una lista.
type Page struct {
	Page  int
	Limit int
}

// Store comandos sobre State. Tras cada mutación se vuelve a pedir la lista afectada;
// no hay actualizaciones optimistas. Es seguro usarlo desde varias goroutines.
type Store struct {
	api *Client

	mu       sync.Mutex
	jobs     Page
	delivery Page
	meals    Page
}

// NewStore construye el store con páginas por defecto (1, 10).
func NewStore(api *Client) *Store {
	def := Page{Page: dto.DefaultPage, Limit: dto.DefaultLimit}
	return &Store{api: api, jobs: def, delivery: def, meals: def}
}

// remember guarda p como última página de la lista apuntada por dst.
func (st *Store) remember(dst *Page, p Page) {
	st.mu.Lock()
	*dst = p
	st.mu.Unlock()
}

func (st *Store) current(src *Page) Page {
	st.mu.Lock()
	defer st.mu.Unlock()
	return *src
}

// failed devuelve s con Error y las listas intactas.
func failed(s State, err error) State {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.Error = apiErr.Message
	} else {
		s.Error = err.Error()
	}
	return s
}

// LoadJobRequests carga la página p de solicitudes.
func (st *Store) LoadJobRequests(ctx context.Context, s State, p Page) State {
	out, err := st.api.ListJobRequests(ctx, p.Page, p.Limit)
	if err != nil {
		return failed(s, err)
	}
	st.remember(&st.jobs, p)
	s.JobRequests = append([]dto.JobRequestResponse(nil), out.Data...)
	s.JobPagination = out.Pagination
	s.Error = ""
	return s
}

// CreateJobRequest crea y recarga la página actual.
func (st *Store) CreateJobRequest(ctx context.Context, s State, in dto.CreateJobRequestRequest) State {
	if _, err := st.api.CreateJobRequest(ctx, in); err != nil {
		return failed(s, err)
	}
	return st.LoadJobRequests(ctx, s, st.current(&st.jobs))
}

// SetJobRequestStatus cambia el estado y recarga.
func (st *Store) SetJobRequestStatus(ctx context.Context, s State, id, status string) State {
	if _, err := st.api.UpdateJobRequestStatus(ctx, id, status); err != nil {
		return failed(s, err)
	}
	return st.LoadJobRequests(ctx, s, st.current(&st.jobs))
}

// DeleteJobRequest elimina y recarga.
func (st *Store) DeleteJobRequest(ctx context.Context, s State, id string) State {
	if err := st.api.DeleteJobRequest(ctx, id); err != nil {
		return failed(s, err)
	}
	return st.LoadJobRequests(ctx, s, st.current(&st.jobs))
}

// LoadDeliveries carga la página p de entregas.
func (st *Store) LoadDeliveries(ctx context.Context, s State, p Page) State {
	out, err := st.api.ListDeliveries(ctx, p.Page, p.Limit)
	if err != nil {
		return failed(s, err)
	}
	st.remember(&st.delivery, p)
	s.Deliveries = append([]dto.DeliveryResponse(nil), out.Data...)
	s.DeliveryPagination = out.Pagination
	s.Error = ""
	return s
}

// SetDeliveryStatus cambia el estado de una entrega y recarga.
func (st *Store) SetDeliveryStatus(ctx context.Context, s State, id, status string) State {
	if _, err := st.api.UpdateDeliveryStatus(ctx, id, status); err != nil {
		return failed(s, err)
	}
	return st.LoadDeliveries(ctx, s, st.current(&st.delivery))
}

// LoadMealCounts carga la página p de conteos. El servidor los devuelve en orden de
// inserción; el snapshot los ordena por fecha descendente.
func (st *Store) LoadMealCounts(ctx context.Context, s State, p Page) State {
	out, err := st.api.ListMealCounts(ctx, p.Page, p.Limit)
	if err != nil {
		return failed(s, err)
	}
	st.remember(&st.meals, p)
	s.MealCounts = append([]dto.MealCountResponse(nil), out.Data...)
	sort.SliceStable(s.MealCounts, func(i, j int) bool { return s.MealCounts[i].Date > s.MealCounts[j].Date })
	s.MealPagination = out.Pagination
	s.Error = ""
	return s
}

// SaveMealCount guarda el conteo del día y recarga.
func (st *Store) SaveMealCount(ctx context.Context, s State, in dto.SaveMealCountRequest) State {
	if _, err := st.api.SaveMealCount(ctx, in); err != nil {
		return failed(s, err)
	}
	return st.LoadMealCounts(ctx, s, st.current(&st.meals))
}
