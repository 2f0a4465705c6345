package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/pkg/jwt"
)

// Locals keys para la identidad del admin autenticado en Fiber.
const (
	LocalAdminID     = "admin_id"
	LocalAdminEmail  = "admin_email"
	LocalAdminNombre = "admin_nombre"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del admin en c.Locals.
// La verificación es stateless: un token emitido sigue siendo válido hasta su
// expiración natural aunque el admin se desactive después.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token no proporcionado"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token inválido"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token no proporcionado"})
		}
		adminID, email, nombre, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token inválido"})
		}
		c.Locals(LocalAdminID, adminID)
		c.Locals(LocalAdminEmail, email)
		c.Locals(LocalAdminNombre, nombre)
		return c.Next()
	}
}

// AdminFromCtx devuelve la identidad del admin del contexto (después del middleware de auth).
func AdminFromCtx(c *fiber.Ctx) dto.AdminResponse {
	return dto.AdminResponse{
		ID:     localString(c, LocalAdminID),
		Nombre: localString(c, LocalAdminNombre),
		Email:  localString(c, LocalAdminEmail),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
