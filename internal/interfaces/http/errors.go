package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
)

// respondError es el único punto que traduce errores de la aplicación a HTTP.
//
//	*ValidationError / ErrInvalidInput  → 400 VALIDATION
//	*NotFoundError / ErrNotFound        → 404 NOT_FOUND
//	ErrUnauthorized                     → 401 UNAUTHORIZED
//	ErrForbidden                        → 403 FORBIDDEN
//	duplicado, email existente, FK      → 409
//	cualquier otro                      → 500 INTERNAL (el error original solo va al log)
func respondError(c *fiber.Ctx, err error) error {
	var (
		ve  *domain.ValidationError
		nf  *domain.NotFoundError
		dup *domain.DuplicateError
		fe  *fiber.Error
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: ve.Error(), Field: ve.Field, Allowed: ve.Allowed,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: nf.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.As(err, &dup):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: dup.Error(), Field: dup.Field})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error(), Field: "email"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: fiberCode(fe.Code), Message: fe.Message})
	}

	msg := "error interno del servidor"
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		msg = pe.Error()
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	}
	return "HTTP_ERROR"
}

// ErrorHandler reemplaza el handler por defecto de Fiber (rutas inexistentes, body demasiado grande, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

// parseBody decodifica el JSON del cuerpo en out y rechaza campos desconocidos.
func parseBody(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return domain.NewValidationError("", "el cuerpo de la petición es requerido")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return &domain.ValidationError{Field: strings.Trim(field, `"`), Message: "campo desconocido"}
		}
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return &domain.ValidationError{Field: te.Field, Message: "tipo inválido"}
		}
		return domain.NewValidationError("", "cuerpo JSON inválido")
	}
	if dec.More() {
		return domain.NewValidationError("", "cuerpo JSON inválido")
	}
	return nil
}

// pageQuery lee ?page=&limit=. Los valores no numéricos usan el valor por defecto.
func pageQuery(c *fiber.Ctx) dto.PageQuery {
	return dto.PageQuery{
		Page:  c.QueryInt("page", dto.DefaultPage),
		Limit: c.QueryInt("limit", dto.DefaultLimit),
	}
}
