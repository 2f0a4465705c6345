package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso para el registro y consulta de clientes,
// incluyendo el historial de ventas de cada uno.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
	ventaRepo   repository.VentaRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository, ventaRepo repository.VentaRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo, ventaRepo: ventaRepo}
}

// Create registra un cliente. El servidor asigna ID y fecha de registro;
// un DNI repetido sube como domain.ErrDNIDuplicado desde el repo.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario := &entity.Usuario{
		ID:             uuid.New().String(),
		DNI:            in.DNI,
		NombreCompleto: in.NombreCompleto,
		Telefono:       in.Telefono,
		Email:          in.Email,
		FechaRegistro:  time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByDNI obtiene un usuario por su DNI. Devuelve nil si no existe.
func (uc *UsuarioUseCase) GetByDNI(dni string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por su ID interno. Devuelve nil si no existe.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	return toUsuarioResponse(usuario), nil
}

// List devuelve todos los usuarios, registrados más recientemente primero.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

// ListVentas devuelve las ventas de un usuario sin datos embebidos
// (variante de admin), más recientes primero.
func (uc *UsuarioUseCase) ListVentas(usuarioID string) ([]dto.VentaResponse, error) {
	list, err := uc.ventaRepo.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toVentaResponse(v))
	}
	return items, nil
}

// ListVentasConUsuario devuelve las ventas de un usuario con su nombre,
// DNI y teléfono embebidos (variante pública, sin email).
func (uc *UsuarioUseCase) ListVentasConUsuario(usuarioID string) ([]dto.VentaConUsuarioResponse, error) {
	list, err := uc.ventaRepo.ListByUsuarioConUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaConUsuarioResponse, 0, len(list))
	for _, vc := range list {
		items = append(items, toVentaConUsuarioResponse(vc, false))
	}
	return items, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:             u.ID,
		DNI:            u.DNI,
		NombreCompleto: u.NombreCompleto,
		Telefono:       u.Telefono,
		Email:          u.Email,
		FechaRegistro:  u.FechaRegistro,
	}
}
