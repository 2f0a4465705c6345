package repository

import "github.com/jmcastillo/papeleria-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	UpdateStock(id string, stock int) error
	Delete(id string) error
}
