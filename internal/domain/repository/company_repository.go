package repository

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// List con limit <= 0 devuelve todas.
	List(ctx context.Context, limit, offset int) ([]*entity.Company, int, error)
	Delete(ctx context.Context, id string) error
	// CountDependents cuenta agentes, reservas, proveedores y facturas de la empresa.
	CountDependents(ctx context.Context, id string) (entity.CompanyDependents, error)
}
