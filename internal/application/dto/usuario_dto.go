package dto

import "time"

// CreateUsuarioRequest entrada del registro público de clientes.
type CreateUsuarioRequest struct {
	DNI            string  `json:"dni" validate:"required"`
	NombreCompleto string  `json:"nombre_completo" validate:"required"`
	Telefono       *string `json:"telefono"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// UsuarioResponse salida de un usuario.
type UsuarioResponse struct {
	ID             string    `json:"id"`
	DNI            string    `json:"dni"`
	NombreCompleto string    `json:"nombre_completo"`
	Telefono       *string   `json:"telefono"`
	Email          *string   `json:"email"`
	FechaRegistro  time.Time `json:"fecha_registro"`
}
