package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de actividad.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reporte
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "Datos del reporte"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reportes (más recientes primero)
// @Tags         reports
// @Produce      json
// @Param        date   query  string  false  "YYYY-MM-DD"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200    {object}  dto.ListResponse[dto.ReportResponse]
// @Router       /api/v1/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reporte con comentarios y archivos
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar clasificación del reporte
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.StatusUpdateRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/reports/{id}/status [put]
func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
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

// AddComment godoc
// @Summary      Comentar reporte
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        reportId  path  string              true  "ID"
// @Param        body      body  dto.CommentRequest  true  "Comentario"
// @Success      201       {object}  dto.CommentResponse
// @Router       /api/v1/reports/{reportId}/comments [post]
func (h *ReportHandler) AddComment(c *fiber.Ctx) error {
	var in dto.CommentRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddComment(c.UserContext(), c.Params("reportId"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddFile godoc
// @Summary      Adjuntar archivo (campo "file", máx. 10 MiB)
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        reportId  path      string  true  "ID"
// @Param        file      formData  file    true  "Archivo"
// @Success      201       {object}  dto.ReportFileResponse
// @Router       /api/v1/reports/{reportId}/files [post]
func (h *ReportHandler) AddFile(c *fiber.Ctx) error {
	in, f, err := formFile(c, "file")
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	out, err := h.uc.AddFile(c.UserContext(), c.Params("reportId"), GetUserID(c), in, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Descargar reporte en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        id   path  string  true  "ID"
// @Success      200  {file}  binary
// @Router       /api/v1/reports/{id}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, data, "reporte-"+c.Params("id")+".pdf", pdfContentType)
}

// Delete godoc
// @Summary      Eliminar reporte (ADMIN o MANAGER)
// @Tags         reports
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/v1/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
