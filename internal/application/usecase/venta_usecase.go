package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

// VentaUseCase casos de uso para pedidos: creación pública y gestión de admin.
type VentaUseCase struct {
	ventaRepo   repository.VentaRepository
	usuarioRepo repository.UsuarioRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventaRepo repository.VentaRepository, usuarioRepo repository.UsuarioRepository) *VentaUseCase {
	return &VentaUseCase{ventaRepo: ventaRepo, usuarioRepo: usuarioRepo}
}

// Create registra una venta. Siempre verifica que el usuario exista
// (domain.ErrNotFound si no) y fuerza el estado inicial a pendiente,
// ignore lo que ignore el cliente.
func (uc *VentaUseCase) Create(in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(in.UsuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNotFound
	}
	venta := &entity.Venta{
		ID:           uuid.New().String(),
		UsuarioID:    in.UsuarioID,
		Productos:    in.Productos,
		Descripcion:  in.Descripcion,
		MetodoPago:   in.MetodoPago,
		LugarEntrega: in.LugarEntrega,
		Estado:       entity.EstadoPendiente,
		FechaVenta:   time.Now(),
	}
	if err := uc.ventaRepo.Create(venta); err != nil {
		return nil, err
	}
	out := toVentaResponse(venta)
	return &out, nil
}

// List devuelve todas las ventas con los datos del usuario embebidos,
// aplicando los filtros opcionales, más recientes primero.
func (uc *VentaUseCase) List(filtro repository.VentaFiltro) ([]dto.VentaConUsuarioResponse, error) {
	list, err := uc.ventaRepo.ListConUsuario(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaConUsuarioResponse, 0, len(list))
	for _, vc := range list {
		items = append(items, toVentaConUsuarioResponse(vc, true))
	}
	return items, nil
}

// GetByID obtiene una venta con los datos del usuario. Devuelve nil si no existe.
func (uc *VentaUseCase) GetByID(id string) (*dto.VentaConUsuarioResponse, error) {
	vc, err := uc.ventaRepo.GetConUsuario(id)
	if err != nil {
		return nil, err
	}
	if vc == nil {
		return nil, nil
	}
	out := toVentaConUsuarioResponse(vc, true)
	return &out, nil
}

// ListByEstado lista ventas por estado. Un estado fuera de la enumeración no
// es error: simplemente no matchea ninguna fila y la lista sale vacía.
func (uc *VentaUseCase) ListByEstado(estado string) ([]dto.VentaConUsuarioResponse, error) {
	return uc.List(repository.VentaFiltro{Estado: estado})
}

// UpdateEstado cambia el estado de una venta. Estados fuera de la enumeración
// devuelven domain.ErrInvalidInput; cualquier transición entre estados
// válidos se permite. Devuelve nil si la venta no existe.
func (uc *VentaUseCase) UpdateEstado(id, estado string) (*dto.VentaResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	if err := uc.ventaRepo.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	venta.Estado = estado
	out := toVentaResponse(venta)
	return &out, nil
}

// Update aplica una actualización parcial. ID y fecha_venta son inmutables y
// no existen en el DTO de entrada; un estado presente se valida contra la
// enumeración y un usuario_id presente reasigna el pedido (el nuevo dueño
// debe existir: domain.ErrNotFound si no). Devuelve nil si la venta no existe.
func (uc *VentaUseCase) Update(id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	if in.Estado != nil && !entity.EstadoValido(*in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	if in.UsuarioID != nil && *in.UsuarioID != venta.UsuarioID {
		usuario, err := uc.usuarioRepo.GetByID(*in.UsuarioID)
		if err != nil {
			return nil, err
		}
		if usuario == nil {
			return nil, domain.ErrNotFound
		}
		venta.UsuarioID = *in.UsuarioID
	}
	if len(in.Productos) > 0 {
		venta.Productos = in.Productos
	}
	if in.Descripcion != nil {
		venta.Descripcion = in.Descripcion
	}
	if in.MetodoPago != nil {
		venta.MetodoPago = in.MetodoPago
	}
	if in.LugarEntrega != nil {
		venta.LugarEntrega = in.LugarEntrega
	}
	if in.Estado != nil {
		venta.Estado = *in.Estado
	}
	if err := uc.ventaRepo.Update(venta); err != nil {
		return nil, err
	}
	out := toVentaResponse(venta)
	return &out, nil
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:           v.ID,
		UsuarioID:    v.UsuarioID,
		Productos:    v.Productos,
		Descripcion:  v.Descripcion,
		MetodoPago:   v.MetodoPago,
		LugarEntrega: v.LugarEntrega,
		Estado:       v.Estado,
		FechaVenta:   v.FechaVenta,
	}
}

// toVentaConUsuarioResponse mapea una lectura con join. conEmail controla si
// el email del usuario se expone (solo variantes de admin).
func toVentaConUsuarioResponse(vc *entity.VentaConUsuario, conEmail bool) dto.VentaConUsuarioResponse {
	usuario := dto.VentaUsuarioResponse{
		NombreCompleto: vc.Usuario.NombreCompleto,
		DNI:            vc.Usuario.DNI,
		Telefono:       vc.Usuario.Telefono,
	}
	if conEmail {
		usuario.Email = vc.Usuario.Email
	}
	return dto.VentaConUsuarioResponse{
		VentaResponse: toVentaResponse(&vc.Venta),
		Usuario:       usuario,
	}
}
