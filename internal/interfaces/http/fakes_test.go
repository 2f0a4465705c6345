package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcastillo/papeleria-api/internal/application/auth"
	"github.com/jmcastillo/papeleria-api/internal/application/usecase"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
	apphttp "github.com/jmcastillo/papeleria-api/internal/interfaces/http"
	pkgjwt "github.com/jmcastillo/papeleria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "papeleria-api-test"
	testAdminEmail = "admin@papeleria.test"
	testAdminPass  = "clave-segura-123"
)

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	if _, ok := f.productos[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	f.productos[p.ID] = &cp
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductoRepo) List() ([]*entity.Producto, error) {
	list := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	f.productos[p.ID] = &cp
	return nil
}

func (f *fakeProductoRepo) UpdateStock(id string, stock int) error {
	if p, ok := f.productos[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (f *fakeProductoRepo) Delete(id string) error {
	delete(f.productos, id)
	return nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por ID interno
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, existing := range f.usuarios {
		if existing.DNI == u.DNI {
			return domain.ErrDNIDuplicado
		}
	}
	cp := *u
	f.usuarios[u.ID] = &cp
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) GetByDNI(dni string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.DNI == dni {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	list := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaRegistro.After(list[j].FechaRegistro) })
	return list, nil
}

type fakeVentaRepo struct {
	ventas   map[string]*entity.Venta
	usuarios *fakeUsuarioRepo // para las lecturas con join
}

func newFakeVentaRepo(usuarios *fakeUsuarioRepo) *fakeVentaRepo {
	return &fakeVentaRepo{ventas: map[string]*entity.Venta{}, usuarios: usuarios}
}

func (f *fakeVentaRepo) Create(v *entity.Venta) error {
	cp := *v
	f.ventas[v.ID] = &cp
	return nil
}

func (f *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	v, ok := f.ventas[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVentaRepo) GetConUsuario(id string) (*entity.VentaConUsuario, error) {
	v, ok := f.ventas[id]
	if !ok {
		return nil, nil
	}
	return f.join(v), nil
}

func (f *fakeVentaRepo) ListConUsuario(filtro repository.VentaFiltro) ([]*entity.VentaConUsuario, error) {
	var list []*entity.VentaConUsuario
	for _, v := range f.ventas {
		if filtro.Estado != "" && v.Estado != filtro.Estado {
			continue
		}
		if filtro.Desde != nil && v.FechaVenta.Before(*filtro.Desde) {
			continue
		}
		list = append(list, f.join(v))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaVenta.After(list[j].FechaVenta) })
	return list, nil
}

func (f *fakeVentaRepo) ListByUsuario(usuarioID string) ([]*entity.Venta, error) {
	var list []*entity.Venta
	for _, v := range f.ventas {
		if v.UsuarioID == usuarioID {
			cp := *v
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaVenta.After(list[j].FechaVenta) })
	return list, nil
}

func (f *fakeVentaRepo) ListByUsuarioConUsuario(usuarioID string) ([]*entity.VentaConUsuario, error) {
	var list []*entity.VentaConUsuario
	for _, v := range f.ventas {
		if v.UsuarioID == usuarioID {
			list = append(list, f.join(v))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaVenta.After(list[j].FechaVenta) })
	return list, nil
}

func (f *fakeVentaRepo) Update(v *entity.Venta) error {
	cp := *v
	f.ventas[v.ID] = &cp
	return nil
}

func (f *fakeVentaRepo) UpdateEstado(id, estado string) error {
	if v, ok := f.ventas[id]; ok {
		v.Estado = estado
	}
	return nil
}

func (f *fakeVentaRepo) join(v *entity.Venta) *entity.VentaConUsuario {
	vc := &entity.VentaConUsuario{Venta: *v}
	if u, _ := f.usuarios.GetByID(v.UsuarioID); u != nil {
		vc.Usuario = entity.VentaUsuario{
			NombreCompleto: u.NombreCompleto,
			DNI:            u.DNI,
			Telefono:       u.Telefono,
			Email:          u.Email,
		}
	}
	return vc
}

type fakeAdminRepo struct {
	admins map[string]*entity.Admin // por email
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (f *fakeAdminRepo) Create(a *entity.Admin) error {
	if _, ok := f.admins[a.Email]; ok {
		return domain.ErrDuplicate
	}
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByEmailActivo(email string) (*entity.Admin, error) {
	a, ok := f.admins[email]
	if !ok || !a.Activo {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) UpdateUltimoAcceso(id string, t time.Time) error {
	for _, a := range f.admins {
		if a.ID == id {
			cp := t
			a.UltimoAcceso = &cp
		}
	}
	return nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test y helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	productos *fakeProductoRepo
	usuarios  *fakeUsuarioRepo
	ventas    *fakeVentaRepo
	admins    *fakeAdminRepo
}

// buildTestApp arma la app Fiber completa sobre fakes, con un admin activo
// sembrado para los flujos de login.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	productos := newFakeProductoRepo()
	usuarios := newFakeUsuarioRepo()
	ventas := newFakeVentaRepo(usuarios)
	admins := newFakeAdminRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, admins.Create(&entity.Admin{
		ID:             "00000000-0000-0000-0000-0000000000ad",
		Email:          testAdminEmail,
		PasswordHash:   string(hash),
		NombreCompleto: "Admin de Prueba",
		Activo:         true,
	}))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductoUC: usecase.NewProductoUseCase(productos),
		UsuarioUC:  usecase.NewUsuarioUseCase(usuarios, ventas),
		VentaUC:    usecase.NewVentaUseCase(ventas, usuarios),
		AuthUC: auth.NewAuthUseCase(admins, auth.JWTConfig{
			Secret:   testJWTSecret,
			ExpHours: 8,
			Issuer:   testIssuer,
		}),
		DB:        fakePinger{},
		JWTSecret: testJWTSecret,
	})
	return &testEnv{app: app, productos: productos, usuarios: usuarios, ventas: ventas, admins: admins}
}

// adminToken genera un Bearer token válido para rutas protegidas.
func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "00000000-0000-0000-0000-0000000000ad", testAdminEmail, "Admin de Prueba", testIssuer, 8)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// decodeList decodifica el body JSON en una lista de mapas.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
