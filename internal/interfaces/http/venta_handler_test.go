package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
)

func seedVenta(env *testEnv, t *testing.T, id, usuarioID, estado string, fecha time.Time) {
	t.Helper()
	require.NoError(t, env.ventas.Create(&entity.Venta{
		ID:         id,
		UsuarioID:  usuarioID,
		Productos:  json.RawMessage(`[{"id":"bond-a4-75","cantidad":2}]`),
		Estado:     estado,
		FechaVenta: fecha,
	}))
}

func TestCrearVenta(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")

	resp := doJSON(t, env.app, http.MethodPost, "/api/ventas", "", map[string]any{
		"usuario_id":  "u-1",
		"productos":   []map[string]any{{"id": "bond-a4-75", "cantidad": 2, "precio_unitario": "14.50"}},
		"metodo_pago": "yape",
		// El estado que mande el cliente se ignora
		"estado": "pagado",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "u-1", body["usuario_id"])
	assert.Equal(t, entity.EstadoPendiente, body["estado"])
	assert.NotEmpty(t, body["fecha_venta"])
}

func TestCrearVentaUsuarioInexistente(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/ventas", "", map[string]any{
		"usuario_id": "no-existe",
		"productos":  []map[string]any{{"id": "bond-a4-75", "cantidad": 1}},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", decodeBody(t, resp)["error"])
}

func TestCrearVentaCamposFaltantes(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")

	casos := []map[string]any{
		{"productos": []map[string]any{{"id": "x"}}},
		{"usuario_id": "u-1"},
	}
	for _, body := range casos {
		resp := doJSON(t, env.app, http.MethodPost, "/api/ventas", "", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "usuario_id y productos son requeridos", decodeBody(t, resp)["error"])
	}
}

func TestListarVentasAdmin(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	email := "maria@correo.test"
	env.usuarios.usuarios["u-1"].Email = &email
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now().Add(-time.Hour))
	seedVenta(env, t, "v-2", "u-1", entity.EstadoPagado, time.Now())

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/ventas", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeList(t, resp)
	require.Len(t, list, 2)
	// Más recientes primero
	assert.Equal(t, "v-2", list[0]["id"])

	// La vista de admin sí incluye el email del cliente
	usuario, ok := list[0]["usuarios"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "María Quispe", usuario["nombre_completo"])
	assert.Equal(t, email, usuario["email"])
}

func TestListarVentasConFiltros(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-vieja", "u-1", entity.EstadoPagado, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	seedVenta(env, t, "v-nueva", "u-1", entity.EstadoPagado, time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC))
	seedVenta(env, t, "v-pend", "u-1", entity.EstadoPendiente, time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC))

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/ventas?estado=pagado", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decodeList(t, resp), 2)

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/ventas?estado=pagado&fecha=2026-02-01", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "v-nueva", list[0]["id"])
}

func TestListarVentasFechaInvalida(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/ventas?fecha=ayer", adminToken(t), nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Fecha inválida", decodeBody(t, resp)["error"])
}

func TestObtenerVentaPorID(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/ventas/v-1", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "v-1", body["id"])
	usuario, ok := body["usuarios"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "45871234", usuario["dni"])

	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/ventas/no-existe", adminToken(t), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Venta no encontrada", decodeBody(t, resp)["error"])
}

func TestListarVentasPorEstado(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())
	seedVenta(env, t, "v-2", "u-1", entity.EstadoEntregado, time.Now())

	resp := doJSON(t, env.app, http.MethodGet, "/api/admin/ventas/estado/entregado", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "v-2", list[0]["id"])

	// Un estado desconocido no es error: lista vacía
	resp = doJSON(t, env.app, http.MethodGet, "/api/admin/ventas/estado/enviado", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))
}

func TestActualizarEstadoDeVenta(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPatch, "/api/admin/ventas/v-1/estado", adminToken(t), map[string]any{
		"estado": "pagado",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.EstadoPagado, decodeBody(t, resp)["estado"])

	guardada, _ := env.ventas.GetByID("v-1")
	require.NotNil(t, guardada)
	assert.Equal(t, entity.EstadoPagado, guardada.Estado)
}

func TestActualizarEstadoInvalido(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPatch, "/api/admin/ventas/v-1/estado", adminToken(t), map[string]any{
		"estado": "enviado",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estado no válido", decodeBody(t, resp)["error"])

	guardada, _ := env.ventas.GetByID("v-1")
	require.NotNil(t, guardada)
	assert.Equal(t, entity.EstadoPendiente, guardada.Estado)
}

func TestActualizarEstadoVentaInexistente(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPatch, "/api/admin/ventas/no-existe/estado", adminToken(t), map[string]any{
		"estado": "pagado",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Venta no encontrada", decodeBody(t, resp)["error"])
}

func TestActualizarVenta(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/ventas/v-1", adminToken(t), map[string]any{
		"descripcion": "entrega en tienda",
		"estado":      "entregado",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	guardada, _ := env.ventas.GetByID("v-1")
	require.NotNil(t, guardada)
	assert.Equal(t, entity.EstadoEntregado, guardada.Estado)
	require.NotNil(t, guardada.Descripcion)
	assert.Equal(t, "entrega en tienda", *guardada.Descripcion)
	// usuario_id y fecha_venta no cambian en el PUT
	assert.Equal(t, "u-1", guardada.UsuarioID)
}

func TestActualizarVentaReasignaUsuario(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedUsuario(env, t, "u-2", "41237765", "Jorge Ramos")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/ventas/v-1", adminToken(t), map[string]any{
		"usuario_id": "u-2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u-2", decodeBody(t, resp)["usuario_id"])

	guardada, _ := env.ventas.GetByID("v-1")
	require.NotNil(t, guardada)
	assert.Equal(t, "u-2", guardada.UsuarioID)
}

func TestActualizarVentaUsuarioInexistente(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/ventas/v-1", adminToken(t), map[string]any{
		"usuario_id": "u-fantasma",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", decodeBody(t, resp)["error"])

	// El dueño original no cambia
	guardada, _ := env.ventas.GetByID("v-1")
	require.NotNil(t, guardada)
	assert.Equal(t, "u-1", guardada.UsuarioID)
}

func TestActualizarVentaEstadoInvalido(t *testing.T) {
	env := buildTestApp(t)
	seedUsuario(env, t, "u-1", "45871234", "María Quispe")
	seedVenta(env, t, "v-1", "u-1", entity.EstadoPendiente, time.Now())

	resp := doJSON(t, env.app, http.MethodPut, "/api/admin/ventas/v-1", adminToken(t), map[string]any{
		"estado": "despachado",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estado no válido", decodeBody(t, resp)["error"])
}
