package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/application/usecase"
	"github.com/jmcastillo/papeleria-api/internal/domain"
)

// UsuarioHandler maneja el registro público de clientes y su administración.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsuarioRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if ok, err := bindAndValidate(c, &in, "DNI y nombre son requeridos"); !ok {
		return err
	}
	if len(in.DNI) < 5 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "DNI inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDNIDuplicado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El DNI ya está registrado"})
		}
		log.Error().Err(err).Msg("error al crear usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByDNI godoc
// @Summary      Obtener cliente por DNI
// @Tags         usuarios
// @Produce      json
// @Param        dni  path  string  true  "DNI del cliente"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{dni} [get]
func (h *UsuarioHandler) GetByDNI(c *fiber.Ctx) error {
	out, err := h.uc.GetByDNI(c.Params("dni"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener usuario")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	return c.JSON(out)
}

// VentasPublico godoc
// @Summary      Ventas de un cliente (con sus datos embebidos)
// @Tags         usuarios
// @Produce      json
// @Param        usuario_id  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.VentaConUsuarioResponse
// @Router       /api/usuarios/{usuario_id}/ventas [get]
func (h *UsuarioHandler) VentasPublico(c *fiber.Ctx) error {
	out, err := h.uc.ListVentasConUsuario(c.Params("usuario_id"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener ventas del usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener ventas"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         admin-usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/admin/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("error al obtener usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener usuarios"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID interno
// @Tags         admin-usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener usuario")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	return c.JSON(out)
}

// VentasAdmin godoc
// @Summary      Ventas de un cliente (lista plana)
// @Tags         admin-usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/admin/usuarios/{id}/ventas [get]
func (h *UsuarioHandler) VentasAdmin(c *fiber.Ctx) error {
	out, err := h.uc.ListVentas(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener ventas del usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener ventas del usuario"})
	}
	return c.JSON(out)
}
