package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto. El ID lo aporta el caller
// (código de catálogo). Un precio ausente o en cero se rechaza igual.
type CreateProductoRequest struct {
	ID             string          `json:"id" validate:"required"`
	Nombre         string          `json:"nombre" validate:"required"`
	Tipo           *string         `json:"tipo"`
	Gramaje        *string         `json:"gramaje"`
	Hojas          *int            `json:"hojas"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	Stock          *int            `json:"stock" validate:"omitempty,min=0"`
	Imagen         *string         `json:"imagen"`
}

// UpdateProductoRequest entrada para actualización parcial. No tiene campo ID:
// la clave del producto es inmutable y cualquier intento de cambiarla se descarta
// por construcción.
type UpdateProductoRequest struct {
	Nombre         *string          `json:"nombre" validate:"omitempty,min=1"`
	Tipo           *string          `json:"tipo"`
	Gramaje        *string          `json:"gramaje"`
	Hojas          *int             `json:"hojas"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Stock          *int             `json:"stock" validate:"omitempty,min=0"`
	Imagen         *string          `json:"imagen"`
}

// UpdateStockRequest entrada para el ajuste puntual de stock.
// Stock es puntero para distinguir "ausente" de 0.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Tipo           *string         `json:"tipo"`
	Gramaje        *string         `json:"gramaje"`
	Hojas          *int            `json:"hojas"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Stock          int             `json:"stock"`
	Imagen         *string         `json:"imagen"`
}
