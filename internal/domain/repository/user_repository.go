package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
}
