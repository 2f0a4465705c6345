package entity

import "github.com/shopspring/decimal"

// Producto artículo del catálogo de la papelería.
// El ID es el código de producto que asigna quien administra el catálogo
// (no lo genera la base de datos) y es inmutable una vez creado.
type Producto struct {
	ID             string
	Nombre         string
	Tipo           *string
	Gramaje        *string
	Hojas          *int
	PrecioUnitario decimal.Decimal
	Stock          int // nunca negativo; el default en creación es 0
	Imagen         *string
}
