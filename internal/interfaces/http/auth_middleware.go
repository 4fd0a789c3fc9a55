package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalRequestID = "request_id"
)

// TokenCookie nombre de la cookie HTTP-only con el token de sesión.
const TokenCookie = "token"

// tokenAuthenticator es el contrato mínimo que necesita el middleware.
// Lo implementa *auth.AuthUseCase (firma, vencimiento y lista de revocación).
type tokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthMiddleware valida el token JWT (cookie "token" o Bearer) y extrae UserID y Role a c.Locals.
func AuthMiddleware(auth tokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido (cookie token o Authorization: Bearer)"})
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		claims, err := auth.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o revocado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// tokenFromRequest prioriza el header Authorization sobre la cookie.
// ok=false si no vino ninguno; token vacío con ok=true si el header está malformado.
func tokenFromRequest(c *fiber.Ctx) (token string, ok bool) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", true
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie := c.Cookies(TokenCookie); cookie != "" {
		return cookie, true
	}
	return "", false
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetRequestID devuelve el id asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

func newRequestID() string { return uuid.New().String() }
