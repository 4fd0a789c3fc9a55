package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

func toCommentResponses(cs []entity.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, dto.CommentResponse{ID: c.ID, Content: c.Content, UserID: c.UserID, CreatedAt: c.CreatedAt})
	}
	return out
}

func toJobRequestResponse(j *entity.JobRequest) *dto.JobRequestResponse {
	if j == nil {
		return nil
	}
	return &dto.JobRequestResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Priority:    string(j.Priority),
		Status:      string(j.Status),
		Category:    j.Category,
		Location:    j.Location,
		AssignedTo:  j.AssignedTo,
		RequestedBy: j.RequestedBy,
		DueDate:     j.DueDate,
		CompletedAt: j.CompletedAt,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
		Comments:    toCommentResponses(j.Comments),
	}
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:            d.ID,
		TrackingNo:    d.TrackingNo,
		ItemName:      d.ItemName,
		Status:        string(d.Status),
		ReceiverName:  d.ReceiverName,
		ReceiverPhone: d.ReceiverPhone,
		SenderName:    d.SenderName,
		SenderPhone:   d.SenderPhone,
		Location:      d.Location,
		Notes:         d.Notes,
		Weight:        d.Weight,
		UserID:        d.UserID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toPatrolResponse(p *entity.Patrol) *dto.PatrolResponse {
	if p == nil {
		return nil
	}
	return &dto.PatrolResponse{
		ID:              p.ID,
		CheckPoint:      p.CheckPoint,
		Status:          string(p.Status),
		Notes:           p.Notes,
		ImagePath:       p.ImagePath,
		CheckedBy:       p.CheckedBy,
		PropertyID:      p.PropertyID,
		TotalCheckPoint: p.TotalCheckPoint,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToMealCountResponse convierte un conteo de comidas; nil produce la fila vacía de la fecha dada.
func ToMealCountResponse(m *entity.MealCount, date time.Time) dto.MealCountResponse {
	if m == nil {
		return dto.MealCountResponse{Date: date.Format(entity.DateLayout)}
	}
	return dto.MealCountResponse{
		ID:        m.ID,
		Date:      m.Date.Format(entity.DateLayout),
		Breakfast: m.Breakfast,
		Lunch:     m.Lunch,
		Dinner:    m.Dinner,
		Total:     m.Total(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Phone:     e.Phone,
		CompanyID: e.CompanyID,
		CreatedAt: e.CreatedAt,
	}
}

// parseDateTime acepta RFC3339 o YYYY-MM-DD (medianoche UTC).
func parseDateTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := entity.ParseDate(s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(field, "formato de fecha inválido (YYYY-MM-DD o RFC3339)")
}

// missing acumula los nombres de campos vacíos.
type missing []string

func (m *missing) str(field, v string) {
	if strings.TrimSpace(v) == "" {
		*m = append(*m, field)
	}
}

func (m *missing) intPtr(field string, v *int) {
	if v == nil {
		*m = append(*m, field)
	}
}

func (m missing) err() error {
	return domain.RequiredFields(m)
}

// listAll recorre f con páginas de MaxLimit hasta agotar total. Para exportaciones.
func listAll[T any](total int, f func(offset, limit int) ([]T, error)) ([]T, error) {
	out := make([]T, 0, total)
	for offset := 0; offset < total; offset += dto.MaxLimit {
		page, err := f(offset, dto.MaxLimit)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < dto.MaxLimit {
			break
		}
	}
	return out, nil
}
