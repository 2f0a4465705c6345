package dto

// LoginRequest credenciales del login de admin.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminResponse perfil público del admin. Nunca incluye el hash de contraseña.
type AdminResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// LoginResponse token firmado más el perfil del admin autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// VerificarResponse respuesta del probe de sesión GET /api/admin/verificar.
type VerificarResponse struct {
	Valido bool          `json:"valido"`
	Admin  AdminResponse `json:"admin"`
}
