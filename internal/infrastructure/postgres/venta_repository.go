package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `v.id, v.usuario_id, v.productos, v.descripcion, v.metodo_pago, v.lugar_entrega, v.estado, v.fecha_venta`

// Create persiste una nueva venta.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, usuario_id, productos, descripcion, metodo_pago, lugar_entrega, estado, fecha_venta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.UsuarioID, venta.Productos, venta.Descripcion, venta.MetodoPago,
		venta.LugarEntrega, venta.Estado, venta.FechaVenta,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID sin datos del usuario.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas v WHERE v.id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UsuarioID, &v.Productos, &v.Descripcion, &v.MetodoPago,
		&v.LugarEntrega, &v.Estado, &v.FechaVenta,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetConUsuario obtiene una venta por ID junto con los datos de su usuario.
func (r *VentaRepo) GetConUsuario(id string) (*entity.VentaConUsuario, error) {
	query := `
		SELECT ` + ventaCols + `, u.nombre_completo, u.dni, u.telefono, u.email
		FROM ventas v
		JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.id = $1`
	var vc entity.VentaConUsuario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&vc.ID, &vc.UsuarioID, &vc.Productos, &vc.Descripcion, &vc.MetodoPago,
		&vc.LugarEntrega, &vc.Estado, &vc.FechaVenta,
		&vc.Usuario.NombreCompleto, &vc.Usuario.DNI, &vc.Usuario.Telefono, &vc.Usuario.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta con usuario: %w", err)
	}
	return &vc, nil
}

// ListConUsuario lista ventas con datos del usuario, filtros opcionales combinables,
// ordenadas por fecha de venta descendente.
func (r *VentaRepo) ListConUsuario(filtro repository.VentaFiltro) ([]*entity.VentaConUsuario, error) {
	query := `
		SELECT ` + ventaCols + `, u.nombre_completo, u.dni, u.telefono, u.email
		FROM ventas v
		JOIN usuarios u ON u.id = v.usuario_id`
	var (
		conds []string
		args  []any
	)
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		conds = append(conds, fmt.Sprintf("v.estado = $%d", len(args)))
	}
	if filtro.Desde != nil {
		args = append(args, *filtro.Desde)
		conds = append(conds, fmt.Sprintf("v.fecha_venta >= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY v.fecha_venta DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return scanVentasConUsuario(rows)
}

// ListByUsuario lista las ventas de un usuario (plano, sin join), más recientes primero.
func (r *VentaRepo) ListByUsuario(usuarioID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas v WHERE v.usuario_id = $1 ORDER BY v.fecha_venta DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list ventas por usuario: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.UsuarioID, &v.Productos, &v.Descripcion, &v.MetodoPago,
			&v.LugarEntrega, &v.Estado, &v.FechaVenta); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListByUsuarioConUsuario lista las ventas de un usuario con sus datos embebidos, más recientes primero.
func (r *VentaRepo) ListByUsuarioConUsuario(usuarioID string) ([]*entity.VentaConUsuario, error) {
	query := `
		SELECT ` + ventaCols + `, u.nombre_completo, u.dni, u.telefono, u.email
		FROM ventas v
		JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.usuario_id = $1
		ORDER BY v.fecha_venta DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list ventas por usuario: %w", err)
	}
	defer rows.Close()
	return scanVentasConUsuario(rows)
}

// Update actualiza los campos mutables de una venta, incluido el usuario
// dueño (ID y fecha_venta nunca cambian).
func (r *VentaRepo) Update(venta *entity.Venta) error {
	query := `
		UPDATE ventas SET usuario_id = $2, productos = $3, descripcion = $4,
			metodo_pago = $5, lugar_entrega = $6, estado = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.UsuarioID, venta.Productos, venta.Descripcion,
		venta.MetodoPago, venta.LugarEntrega, venta.Estado,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// UpdateEstado actualiza únicamente el estado de una venta.
func (r *VentaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE ventas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	return nil
}

func scanVentasConUsuario(rows pgx.Rows) ([]*entity.VentaConUsuario, error) {
	var list []*entity.VentaConUsuario
	for rows.Next() {
		var vc entity.VentaConUsuario
		if err := rows.Scan(
			&vc.ID, &vc.UsuarioID, &vc.Productos, &vc.Descripcion, &vc.MetodoPago,
			&vc.LugarEntrega, &vc.Estado, &vc.FechaVenta,
			&vc.Usuario.NombreCompleto, &vc.Usuario.DNI, &vc.Usuario.Telefono, &vc.Usuario.Email,
		); err != nil {
			return nil, fmt.Errorf("scan venta con usuario: %w", err)
		}
		list = append(list, &vc)
	}
	return list, rows.Err()
}
