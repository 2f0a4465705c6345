package repository

import (
	"time"

	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
)

// VentaFiltro filtros opcionales y combinables para listados de ventas.
type VentaFiltro struct {
	Estado string     // coincidencia exacta sobre estado; vacío = sin filtro
	Desde  *time.Time // cota inferior inclusiva sobre fecha_venta; nil = sin filtro
}

// VentaRepository define el puerto de persistencia para Venta (DIP).
// Las variantes ConUsuario devuelven la venta junto con la proyección del
// usuario dueño (lectura con join).
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	GetConUsuario(id string) (*entity.VentaConUsuario, error)
	ListConUsuario(filtro VentaFiltro) ([]*entity.VentaConUsuario, error)
	ListByUsuario(usuarioID string) ([]*entity.Venta, error)
	ListByUsuarioConUsuario(usuarioID string) ([]*entity.VentaConUsuario, error)
	Update(venta *entity.Venta) error
	UpdateEstado(id, estado string) error
}
