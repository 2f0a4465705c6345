package usecase

import (
	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para el catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// List devuelve todo el catálogo ordenado por nombre.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto. Devuelve nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Create crea un producto. Stock ausente inicia en 0; un ID duplicado
// sube como domain.ErrDuplicate desde el repo (constraint 23505).
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	producto := &entity.Producto{
		ID:             in.ID,
		Nombre:         in.Nombre,
		Tipo:           in.Tipo,
		Gramaje:        in.Gramaje,
		Hojas:          in.Hojas,
		PrecioUnitario: in.PrecioUnitario,
		Stock:          stock,
		Imagen:         in.Imagen,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Update aplica una actualización parcial. El ID no es modificable: el DTO
// de entrada ni siquiera lo contiene. Devuelve nil si el producto no existe.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		producto.Tipo = in.Tipo
	}
	if in.Gramaje != nil {
		producto.Gramaje = in.Gramaje
	}
	if in.Hojas != nil {
		producto.Hojas = in.Hojas
	}
	if in.PrecioUnitario != nil {
		producto.PrecioUnitario = *in.PrecioUnitario
	}
	if in.Stock != nil {
		producto.Stock = *in.Stock
	}
	if in.Imagen != nil {
		producto.Imagen = in.Imagen
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// UpdateStock ajusta únicamente el stock. La validación stock >= 0 ocurre en
// el handler; aquí solo se aplica. Devuelve nil si el producto no existe.
func (uc *ProductoUseCase) UpdateStock(id string, stock int) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	producto.Stock = stock
	return toProductoResponse(producto), nil
}

// Delete elimina un producto por ID. Un ID inexistente no es error.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Tipo:           p.Tipo,
		Gramaje:        p.Gramaje,
		Hojas:          p.Hojas,
		PrecioUnitario: p.PrecioUnitario,
		Stock:          p.Stock,
		Imagen:         p.Imagen,
	}
}
