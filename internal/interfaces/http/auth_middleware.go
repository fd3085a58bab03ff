package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/pkg/jwt"
	"github.com/jhoicas/chilaquiles-api/pkg/logger"
)

// LocalUserID key de c.Locals con el id autenticado (int64).
const LocalUserID = "user_id"

// tokenVerifier lo implementa *jwt.Manager.
type tokenVerifier interface {
	Verify(token string) (jwt.Identity, error)
}

// adminChecker lo implementa *auth.AuthUseCase; relee el rol en la base de datos.
type adminChecker interface {
	AuthorizeAdmin(ctx context.Context, userID int64) error
}

// AuthMiddleware valida el Bearer Token JWT y deja el UserID en c.Locals.
func AuthMiddleware(verifier tokenVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := verifier.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, identity.UserID)
		return c.Next()
	}
}

// RequireAdmin exige rol admin vigente en la base de datos. Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 si no hay identidad autenticada en el contexto.
//   - 403 si el usuario no es admin, está inactivo o ya no existe.
func RequireAdmin(checker adminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
		}
		if err := checker.AuthorizeAdmin(c.Context(), userID); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth); 0 si no hay.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
