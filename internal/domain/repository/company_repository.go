package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// CompanyRepository puerto de persistencia de empresas.
// GetByID devuelve (nil, nil) cuando la empresa no existe.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
