package repository

import (
	"time"

	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	// Create se usa desde cmd/seedadmin; la API no expone registro de admins.
	Create(admin *entity.Admin) error
	// GetByEmailActivo busca un admin por email con activo=true.
	GetByEmailActivo(email string) (*entity.Admin, error)
	UpdateUltimoAcceso(id string, t time.Time) error
}
