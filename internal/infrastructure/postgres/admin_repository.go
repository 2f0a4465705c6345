package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para admins.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un nuevo admin (bootstrap vía cmd/seedadmin).
func (r *AdminRepo) Create(admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, nombre_completo, activo, ultimo_acceso)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		admin.ID, admin.Email, admin.PasswordHash, admin.NombreCompleto, admin.Activo, admin.UltimoAcceso,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByEmailActivo busca un admin activo por email. Un admin desactivado
// no aparece, así que el login lo trata como credenciales inválidas.
func (r *AdminRepo) GetByEmailActivo(email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password_hash, nombre_completo, activo, ultimo_acceso
		FROM admins WHERE email = $1 AND activo = true`
	var a entity.Admin
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.NombreCompleto, &a.Activo, &a.UltimoAcceso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// UpdateUltimoAcceso registra el momento del último login exitoso.
func (r *AdminRepo) UpdateUltimoAcceso(id string, t time.Time) error {
	_, err := r.q.Exec(context.Background(), `UPDATE admins SET ultimo_acceso = $2 WHERE id = $1`, id, t)
	if err != nil {
		return fmt.Errorf("update ultimo_acceso: %w", err)
	}
	return nil
}
