package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jmcastillo/papeleria-api/internal/application/auth"
	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/domain"
)

// AuthHandler maneja login y verificación de sesión de admins.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login de admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := bindAndValidate(c, &in, "Email y contraseña son requeridos"); !ok {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciales inválidas"})
		}
		log.Error().Err(err).Msg("error en login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error del servidor"})
	}
	return c.JSON(out)
}

// Verificar godoc
// @Summary      Validar sesión de admin
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerificarResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/verificar [get]
func (h *AuthHandler) Verificar(c *fiber.Ctx) error {
	// El middleware ya validó el token; aquí solo se devuelve la identidad.
	return c.JSON(dto.VerificarResponse{
		Valido: true,
		Admin:  AdminFromCtx(c),
	})
}
