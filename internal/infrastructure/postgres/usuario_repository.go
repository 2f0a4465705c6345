package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. El DNI tiene constraint único en la tabla.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, dni, nombre_completo, telefono, email, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.DNI, usuario.NombreCompleto, usuario.Telefono, usuario.Email,
		usuario.FechaRegistro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDNIDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por su ID interno.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByDNI obtiene un usuario por su DNI.
func (r *UsuarioRepo) GetByDNI(dni string) (*entity.Usuario, error) {
	return r.getWhere(`dni = $1`, dni)
}

func (r *UsuarioRepo) getWhere(cond string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, dni, nombre_completo, telefono, email, fecha_registro
		FROM usuarios WHERE ` + cond
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.DNI, &u.NombreCompleto, &u.Telefono, &u.Email, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List lista todos los usuarios ordenados por fecha de registro descendente.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id, dni, nombre_completo, telefono, email, fecha_registro
		FROM usuarios ORDER BY fecha_registro DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.DNI, &u.NombreCompleto, &u.Telefono, &u.Email, &u.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
