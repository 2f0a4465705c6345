package entity

import "time"

// Usuario cliente registrado de la tienda.
// DNI es el identificador externo único (lo aporta el cliente); ID es el
// identificador interno asignado por el servidor. Ambos son inmutables.
type Usuario struct {
	ID             string
	DNI            string
	NombreCompleto string
	Telefono       *string
	Email          *string
	FechaRegistro  time.Time
}
