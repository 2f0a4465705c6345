package repository

import "github.com/jmcastillo/papeleria-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByDNI(dni string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
}
