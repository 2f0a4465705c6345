package entity

import "time"

// Admin cuenta administrativa del dashboard. El login exige Activo=true;
// UltimoAcceso se actualiza en cada login exitoso.
type Admin struct {
	ID             string
	Email          string
	PasswordHash   string
	NombreCompleto string
	Activo         bool
	UltimoAcceso   *time.Time
}
