package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/application/usecase"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

// VentaHandler maneja la creación pública de pedidos y su gestión de admin.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if ok, err := bindAndValidate(c, &in, "usuario_id y productos son requeridos"); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		}
		log.Error().Err(err).Msg("error al crear venta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear venta"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas (filtros opcionales estado y fecha)
// @Tags         admin-ventas
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Estado exacto"
// @Param        fecha   query  string  false  "Cota inferior de fecha_venta (YYYY-MM-DD o RFC3339)"
// @Success      200  {array}  dto.VentaConUsuarioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	filtro := repository.VentaFiltro{Estado: c.Query("estado")}
	if fecha := c.Query("fecha"); fecha != "" {
		desde, err := parseFecha(fecha)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Fecha inválida"})
		}
		filtro.Desde = &desde
	}
	out, err := h.uc.List(filtro)
	if err != nil {
		log.Error().Err(err).Msg("error al obtener ventas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener ventas"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         admin-ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaConUsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener venta")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(out)
}

// ListByEstado godoc
// @Summary      Listar ventas por estado
// @Tags         admin-ventas
// @Security     Bearer
// @Produce      json
// @Param        estado  path  string  true  "Estado"
// @Success      200  {array}  dto.VentaConUsuarioResponse
// @Router       /api/admin/ventas/estado/{estado} [get]
func (h *VentaHandler) ListByEstado(c *fiber.Ctx) error {
	// Un estado fuera de la enumeración no se rechaza: devuelve lista vacía.
	out, err := h.uc.ListByEstado(c.Params("estado"))
	if err != nil {
		log.Error().Err(err).Msg("error al obtener ventas por estado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener ventas"})
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado de una venta
// @Tags         admin-ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/{id}/estado [patch]
func (h *VentaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if ok, err := bindAndValidate(c, &in, "Estado no válido"); !ok {
		return err
	}
	out, err := h.uc.UpdateEstado(c.Params("id"), in.Estado)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado no válido"})
		}
		log.Error().Err(err).Msg("error al actualizar estado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar estado"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         admin-ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVentaRequest
	if ok, err := bindAndValidate(c, &in, "Datos inválidos"); !ok {
		return err
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado no válido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			// El usuario_id de la reasignación no existe
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		}
		log.Error().Err(err).Msg("error al actualizar venta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar venta"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(out)
}

// parseFecha acepta fecha sola (YYYY-MM-DD) o timestamp RFC3339.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
