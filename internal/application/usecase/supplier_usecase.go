package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// SupplierUseCase gestión de proveedores de una empresa.
// Fuera de master y admin cada actor opera solo sobre los proveedores de su empresa.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	lc        lifecycle[entity.Supplier]
	now       func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, metrics ports.Metrics, log *logger.Logger) *SupplierUseCase {
	uc := &SupplierUseCase{suppliers: suppliers, now: time.Now}
	uc.lc = lifecycle[entity.Supplier]{
		name:    "supplier",
		repo:    suppliers,
		scope:   func(_ context.Context, actor policy.Actor, s *entity.Supplier) error { return scopeSupplier(actor, s) },
		guard:   uc.guardPurge,
		metrics: metrics,
		log:     log,
	}
	return uc
}

func scopeSupplier(actor policy.Actor, s *entity.Supplier) error {
	if policy.IsTopTier(actor.Role) || (actor.CompanyID != "" && s.CompanyID == actor.CompanyID) {
		return nil
	}
	return domain.ErrForbidden
}

func (uc *SupplierUseCase) guardPurge(ctx context.Context, id string) error {
	deps, err := uc.suppliers.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if deps.Any() {
		return fmt.Errorf("%w: el proveedor tiene %d contratos y %d catálogos asociados",
			domain.ErrHasDependents, deps.Contracts, deps.Catalogs)
	}
	return nil
}

// Create da de alta un proveedor. companyID solo lo eligen master y admin; el resto usa la suya.
func (uc *SupplierUseCase) Create(ctx context.Context, actor policy.Actor, companyID string, values map[string]string) (*dto.SupplierResponse, error) {
	companyID = policy.ScopeCompany(actor, strings.TrimSpace(companyID))
	if companyID == "" {
		return nil, fmt.Errorf("%w: empresa requerida", domain.ErrInvalidInput)
	}
	now := uc.now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		State:     entity.LifecycleActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	supplierManifest.Apply(s, values)
	if s.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if err := uc.suppliers.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Update modifica los campos presentes del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, actor policy.Actor, id string, values map[string]string) (*dto.SupplierResponse, error) {
	s, err := uc.lc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	supplierManifest.Apply(s, values)
	if s.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	s.UpdatedAt = uc.now()
	if err := uc.suppliers.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID devuelve el proveedor si está en el alcance del actor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.SupplierResponse, error) {
	s, err := uc.lc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// List lista proveedores; los inactivos solo con IncludeInactive.
func (uc *SupplierUseCase) List(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) (*dto.SupplierListResponse, error) {
	in.DefaultPage()
	f := supplierFilter(actor, in)
	f.Limit, f.Offset = in.Limit, in.Offset
	list, total, err := uc.suppliers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListAll sin paginar (exportaciones).
func (uc *SupplierUseCase) ListAll(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]*entity.Supplier, error) {
	list, _, err := uc.suppliers.List(ctx, supplierFilter(actor, in))
	return list, err
}

func supplierFilter(actor policy.Actor, in dto.LifecycleListRequest) repository.SupplierFilter {
	return repository.SupplierFilter{
		CompanyID:       policy.ScopeCompany(actor, in.CompanyID),
		IncludeInactive: in.IncludeInactive,
		Search:          strings.TrimSpace(in.Search),
	}
}

// Deactivate baja lógica.
func (uc *SupplierUseCase) Deactivate(ctx context.Context, actor policy.Actor, id string) error {
	return uc.lc.deactivate(ctx, actor, id)
}

// Reactivate vuelve a activar un proveedor dado de baja.
func (uc *SupplierUseCase) Reactivate(ctx context.Context, actor policy.Actor, id string) error {
	return uc.lc.reactivate(ctx, actor, id)
}

// Purge borra definitivamente. Se rechaza mientras existan contratos o catálogos
// asociados, estén activos o no.
func (uc *SupplierUseCase) Purge(ctx context.Context, actor policy.Actor, id string) error {
	return uc.lc.purge(ctx, actor, id)
}
