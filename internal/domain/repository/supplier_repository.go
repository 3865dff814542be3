package repository

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// LifecycleRepository operaciones de baja lógica, reactivación y borrado definitivo.
type LifecycleRepository[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	SetState(ctx context.Context, id string, state entity.Lifecycle) error
	Delete(ctx context.Context, id string) error
}

// SupplierFilter criterios de listado de proveedores.
type SupplierFilter struct {
	CompanyID       string
	IncludeInactive bool
	Search          string
	Limit           int
	Offset          int
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	LifecycleRepository[entity.Supplier]
	Create(ctx context.Context, s *entity.Supplier) error
	Update(ctx context.Context, s *entity.Supplier) error
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, int, error)
	CountDependents(ctx context.Context, id string) (entity.SupplierDependents, error)
}

// ContractFilter criterios de listado de contratos y catálogos.
type ContractFilter struct {
	SupplierID      string
	CompanyID       string // empresa del proveedor
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	LifecycleRepository[entity.Contract]
	Create(ctx context.Context, c *entity.Contract) error
	Update(ctx context.Context, c *entity.Contract) error
	List(ctx context.Context, f ContractFilter) ([]*entity.Contract, int, error)
	GetAttachment(ctx context.Context, id string) (*entity.Attachment, error)
}

// CatalogRepository puerto de persistencia para catálogos.
type CatalogRepository interface {
	LifecycleRepository[entity.Catalog]
	Create(ctx context.Context, c *entity.Catalog) error
	Update(ctx context.Context, c *entity.Catalog) error
	List(ctx context.Context, f ContractFilter) ([]*entity.Catalog, int, error)
	GetAttachment(ctx context.Context, id string) (*entity.Attachment, error)
}
