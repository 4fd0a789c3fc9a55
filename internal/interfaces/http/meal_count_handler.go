package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
)

// MealCountHandler maneja el conteo diario de comidas.
type MealCountHandler struct {
	uc *usecase.MealCountUseCase
}

// NewMealCountHandler construye el handler.
func NewMealCountHandler(uc *usecase.MealCountUseCase) *MealCountHandler {
	return &MealCountHandler{uc: uc}
}

// Save godoc
// @Summary      Guardar conteo del día (upsert por fecha)
// @Tags         meal-counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveMealCountRequest  true  "date, breakfast, lunch, dinner"
// @Success      200   {object}  dto.MealCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/meal-counts [post]
func (h *MealCountHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveMealCountRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar conteos (fecha descendente)
// @Tags         meal-counts
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.ListResponse[dto.MealCountResponse]
// @Router       /api/v1/meal-counts [get]
func (h *MealCountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByDate godoc
// @Summary      Conteo de una fecha (ceros si no existe)
// @Tags         meal-counts
// @Produce      json
// @Param        date  path  string  true  "YYYY-MM-DD"
// @Success      200   {object}  dto.MealCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/meal-counts/{date} [get]
func (h *MealCountHandler) GetByDate(c *fiber.Ctx) error {
	out, err := h.uc.GetByDate(c.UserContext(), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar conteos a XLSX (por defecto los últimos 30 días)
// @Tags         meal-counts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {file}  binary
// @Router       /api/v1/meal-counts/export [get]
func (h *MealCountHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, data, "comidas.xlsx", xlsxContentType)
}
