package dto

import "math"

const (
	// DefaultPage página por defecto (base 1).
	DefaultPage = 1
	// DefaultLimit tamaño de página por defecto.
	DefaultLimit = 10
	// MaxLimit tope de tamaño de página.
	MaxLimit = 100
)

// PageQuery paginación por offset para listados (?page=&limit=).
type PageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto: page < 1 → 1, limit <= 0 → 10, limit > 100 → 100.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset devuelve (page-1)*limit. Si el producto desborda int se satura en
// math.MaxInt-limit, que sigue quedando fuera de cualquier total real.
func (q PageQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > (math.MaxInt-q.Limit)/q.Limit {
		return math.MaxInt - q.Limit
	}
	return (q.Page - 1) * q.Limit
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination calcula los metadatos para q (ya normalizada) y el total de filas.
// Una página fuera de rango no se recorta: los metadatos se calculan igual.
func NewPagination(q PageQuery, totalItems int) Pagination {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (totalItems + q.Limit - 1) / q.Limit
	}
	return Pagination{
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNextPage: q.Offset()+q.Limit < totalItems,
		HasPrevPage: q.Page > 1,
	}
}

// ListResponse sobre de los listados: { data: [...], pagination: {...} }.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewListResponse garantiza que data se serialice como arreglo aunque esté vacío.
func NewListResponse[T any](items []T, q PageQuery, total int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Data: items, Pagination: NewPagination(q, total)}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// StatusUpdateRequest cuerpo de los endpoints de cambio de estado.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// CommentRequest entrada para agregar un comentario.
type CommentRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}
