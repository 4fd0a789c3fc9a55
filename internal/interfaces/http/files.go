package http

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

func sendAttachment(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(data)))
	return c.Send(data)
}

// formFile abre el archivo multipart del campo indicado.
// El llamador debe cerrar el archivo devuelto.
func formFile(c *fiber.Ctx, field string) (dto.UploadFileInput, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return dto.UploadFileInput{}, nil, domain.NewValidationError(field, "archivo requerido (multipart/form-data)")
	}
	f, err := fh.Open()
	if err != nil {
		return dto.UploadFileInput{}, nil, err
	}
	in := dto.UploadFileInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	}
	return in, f, nil
}
