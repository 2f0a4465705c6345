package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jmcastillo/papeleria-api/internal/application/auth"
	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/application/usecase"
)

// Pinger permite al probe de conectividad verificar la base de datos.
// *pgxpool.Pool lo satisface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC *usecase.ProductoUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	VentaUC    *usecase.VentaUseCase
	AuthUC     *auth.AuthUseCase
	DB         Pinger
	JWTSecret  string
}

// Router registra las rutas de la API. Un único set de handlers atiende
// tanto las rutas públicas como las de admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/test", testHandler(deps.DB))

	productoHandler := NewProductoHandler(deps.ProductoUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	ventaHandler := NewVentaHandler(deps.VentaUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	// Público: catálogo, registro de clientes y creación de pedidos
	api.Get("/productos", productoHandler.List)
	api.Get("/productos/:id", productoHandler.GetByID)
	api.Post("/usuarios", usuarioHandler.Create)
	api.Get("/usuarios/:dni", usuarioHandler.GetByDNI)
	api.Get("/usuarios/:usuario_id/ventas", usuarioHandler.VentasPublico)
	api.Post("/ventas", ventaHandler.Create)

	// Admin: login público, el resto detrás del Bearer Token
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	protegido := admin.Group("/", AuthMiddleware(deps.JWTSecret))
	protegido.Get("/verificar", authHandler.Verificar)

	protegido.Post("/productos", productoHandler.Create)
	protegido.Put("/productos/:id", productoHandler.Update)
	protegido.Patch("/productos/:id/stock", productoHandler.UpdateStock)
	protegido.Delete("/productos/:id", productoHandler.Delete)

	protegido.Get("/ventas", ventaHandler.List)
	// /ventas/estado/:estado antes que /ventas/:id para que "estado" no matchee como id
	protegido.Get("/ventas/estado/:estado", ventaHandler.ListByEstado)
	protegido.Get("/ventas/:id", ventaHandler.GetByID)
	protegido.Patch("/ventas/:id/estado", ventaHandler.UpdateEstado)
	protegido.Put("/ventas/:id", ventaHandler.Update)

	protegido.Get("/usuarios", usuarioHandler.List)
	protegido.Get("/usuarios/:id", usuarioHandler.GetByID)
	protegido.Get("/usuarios/:id/ventas", usuarioHandler.VentasAdmin)

	// Cualquier ruta o método no registrado
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Ruta no encontrada"})
	})
}

// testHandler probe de conectividad con la base de datos.
func testHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			log.Error().Err(err).Msg("error en test de conexión")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error de conexión con la base de datos"})
		}
		return c.JSON(dto.TestResponse{
			Success:   true,
			Message:   "Conexión exitosa con la base de datos",
			DBStatus:  "conectado",
			Timestamp: time.Now(),
		})
	}
}
