package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/opsdesk-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los conteos del día en curso.
// GET /api/v1/dashboard
//
// Respuesta: DashboardDTO (solicitudes y entregas creadas hoy y por estado,
// rondas y reportes del día, conteo de comidas de hoy o ceros).
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
