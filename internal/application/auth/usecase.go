package auth

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcastillo/papeleria-api/internal/application/dto"
	"github.com/jmcastillo/papeleria-api/internal/domain"
	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/domain/repository"
	"github.com/jmcastillo/papeleria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase caso de uso de autenticación de admins: login y eco de sesión.
// No hay registro por API; los admins se crean con cmd/seedadmin.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash almacenado y genera el JWT.
// Un admin inexistente, desactivado o con contraseña incorrecta devuelve
// siempre domain.ErrUnauthorized, sin distinguir el caso.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByEmailActivo(in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Best effort: un fallo aquí no invalida el login.
	if err := uc.adminRepo.UpdateUltimoAcceso(admin.ID, time.Now()); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("no se pudo actualizar ultimo_acceso")
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Email, admin.NombreCompleto, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: toAdminResponse(admin),
	}, nil
}

func toAdminResponse(a *entity.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:     a.ID,
		Nombre: a.NombreCompleto,
		Email:  a.Email,
	}
}
