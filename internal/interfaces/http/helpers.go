package http

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jmcastillo/papeleria-api/internal/application/dto"
)

var validate = validator.New()

func init() {
	// Registrar decimal.Decimal como tipo numérico para que las tags
	// required/min funcionen sin panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate parsea el body JSON y ejecuta las tags de validación.
// Cualquier fallo responde 400 con el mensaje fijo de la ruta y devuelve
// false; el handler debe retornar de inmediato.
func bindAndValidate(c *fiber.Ctx, req interface{}, msg string) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}
	if err := validate.Struct(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}
	return true, nil
}
