package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
)

// PatrolHandler maneja las rondas de patrullaje.
type PatrolHandler struct {
	uc *usecase.PatrolUseCase
}

// NewPatrolHandler construye el handler.
func NewPatrolHandler(uc *usecase.PatrolUseCase) *PatrolHandler {
	return &PatrolHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ronda (checkedBy debe existir)
// @Tags         patrols
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatrolRequest  true  "Datos de la ronda"
// @Success      201   {object}  dto.PatrolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/patrols [post]
func (h *PatrolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatrolRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rondas
// @Tags         patrols
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.ListResponse[dto.PatrolResponse]
// @Router       /api/v1/patrols [get]
func (h *PatrolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ronda
// @Tags         patrols
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.PatrolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/patrols/{id} [get]
func (h *PatrolHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de la ronda
// @Tags         patrols
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.UpdatePatrolRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.PatrolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/patrols/{id} [patch]
func (h *PatrolHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePatrolRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus cambia solo el estado.
// PATCH /api/v1/patrols/:id/status
func (h *PatrolHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusUpdateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Subir foto de la ronda (campo "image", máx. 10 MiB)
// @Tags         patrols
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID"
// @Param        image  formData  file    true  "Imagen"
// @Success      200    {object}  dto.PatrolResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/patrols/{id}/image [post]
func (h *PatrolHandler) UploadImage(c *fiber.Ctx) error {
	in, f, err := formFile(c, "image")
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	out, err := h.uc.UploadImage(c.UserContext(), c.Params("id"), in, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ronda (ADMIN o MANAGER)
// @Tags         patrols
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/patrols/{id} [delete]
func (h *PatrolHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
