package dto

import (
	"encoding/json"
	"time"
)

// CreateVentaRequest entrada para crear una venta. Productos es la lista de
// líneas producto/cantidad del pedido; se acepta opaca y no se valida contra
// el catálogo. Cualquier estado enviado por el cliente se ignora: una venta
// nueva siempre es pendiente.
type CreateVentaRequest struct {
	UsuarioID    string          `json:"usuario_id" validate:"required"`
	Productos    json.RawMessage `json:"productos" validate:"required"`
	Descripcion  *string         `json:"descripcion"`
	MetodoPago   *string         `json:"metodo_pago"`
	LugarEntrega *string         `json:"lugar_entrega"`
}

// UpdateVentaRequest entrada para actualización parcial. Sin campos ID ni
// fecha_venta: ambos son inmutables y se descartan por construcción. Un
// usuario_id presente reasigna el pedido a otro cliente.
type UpdateVentaRequest struct {
	UsuarioID    *string         `json:"usuario_id"`
	Productos    json.RawMessage `json:"productos"`
	Descripcion  *string         `json:"descripcion"`
	MetodoPago   *string         `json:"metodo_pago"`
	LugarEntrega *string         `json:"lugar_entrega"`
	Estado       *string         `json:"estado"`
}

// UpdateEstadoRequest entrada del cambio puntual de estado.
type UpdateEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// VentaResponse salida de una venta sin datos del usuario.
type VentaResponse struct {
	ID           string          `json:"id"`
	UsuarioID    string          `json:"usuario_id"`
	Productos    json.RawMessage `json:"productos"`
	Descripcion  *string         `json:"descripcion"`
	MetodoPago   *string         `json:"metodo_pago"`
	LugarEntrega *string         `json:"lugar_entrega"`
	Estado       string          `json:"estado"`
	FechaVenta   time.Time       `json:"fecha_venta"`
}

// VentaUsuarioResponse datos del usuario dueño embebidos en una lectura con join.
// La clave JSON "usuarios" replica la forma del embed que consumía el dashboard.
type VentaUsuarioResponse struct {
	NombreCompleto string  `json:"nombre_completo"`
	DNI            string  `json:"dni"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email,omitempty"`
}

// VentaConUsuarioResponse venta con los datos de su usuario.
type VentaConUsuarioResponse struct {
	VentaResponse
	Usuario VentaUsuarioResponse `json:"usuarios"`
}
