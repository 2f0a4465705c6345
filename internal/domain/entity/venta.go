package entity

import (
	"encoding/json"
	"time"
)

// Estados posibles de una venta. Cualquier estado puede pasar a cualquier otro;
// una venta nueva siempre nace en pendiente.
const (
	EstadoPendiente = "pendiente"
	EstadoPagado    = "pagado"
	EstadoEntregado = "entregado"
	EstadoCancelado = "cancelado"
)

// EstadoValido indica si s pertenece a la enumeración de estados de venta.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoPagado, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// Venta pedido de un usuario. Productos es la lista de líneas producto/cantidad
// tal como la envía el cliente; se almacena opaca (JSONB) y no se valida contra
// el catálogo.
type Venta struct {
	ID           string
	UsuarioID    string
	Productos    json.RawMessage
	Descripcion  *string
	MetodoPago   *string
	LugarEntrega *string
	Estado       string
	FechaVenta   time.Time
}

// VentaUsuario proyección de los campos del usuario dueño que acompañan
// una venta en las lecturas con join. Email solo se expone en las
// respuestas de admin.
type VentaUsuario struct {
	NombreCompleto string
	DNI            string
	Telefono       *string
	Email          *string
}

// VentaConUsuario venta junto con los datos de su usuario (lectura con join).
type VentaConUsuario struct {
	Venta
	Usuario VentaUsuario
}
