package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
)

// JobRequestHandler maneja las solicitudes de trabajo.
type JobRequestHandler struct {
	uc *usecase.JobRequestUseCase
}

// NewJobRequestHandler construye el handler.
func NewJobRequestHandler(uc *usecase.JobRequestUseCase) *JobRequestHandler {
	return &JobRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de trabajo (nace OPEN)
// @Tags         job-requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.JobRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/job-requests [post]
func (h *JobRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequestRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if in.RequestedBy == "" {
		in.RequestedBy = GetUserID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de trabajo
// @Tags         job-requests
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.ListResponse[dto.JobRequestResponse]
// @Router       /api/v1/job-requests [get]
func (h *JobRequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud con comentarios
// @Tags         job-requests
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.JobRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/job-requests/{id} [get]
func (h *JobRequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial (sin estado)
// @Tags         job-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID"
// @Param        body  body  dto.UpdateJobRequestRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.JobRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-requests/{id} [patch]
func (h *JobRequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequestRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado (COMPLETED fija completedAt, otro estado lo limpia)
// @Tags         job-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.StatusUpdateRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.JobRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/job-requests/{id}/status [put]
func (h *JobRequestHandler) UpdateStatus(c *fiber.Ctx) error {
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

// Delete godoc
// @Summary      Eliminar solicitud (ADMIN o MANAGER)
// @Tags         job-requests
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/job-requests/{id} [delete]
func (h *JobRequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComment godoc
// @Summary      Agregar comentario
// @Tags         job-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID"
// @Param        body  body  dto.CommentRequest  true  "Comentario"
// @Success      201   {object}  dto.CommentResponse
// @Router       /api/v1/job-requests/{id}/comments [post]
func (h *JobRequestHandler) AddComment(c *fiber.Ctx) error {
	var in dto.CommentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddComment(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Export godoc
// @Summary      Exportar solicitudes a XLSX
// @Tags         job-requests
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/v1/job-requests/export [get]
func (h *JobRequestHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, data, "solicitudes.xlsx", xlsxContentType)
}
