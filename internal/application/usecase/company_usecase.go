package usecase

import (
	"context"
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

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	metrics ports.Metrics
	log     *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, metrics ports.Metrics, log *logger.Logger) *CompanyUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CompanyUseCase{repo: repo, metrics: metrics, log: log}
}

// Create crea una nueva empresa. Solo master y admin.
func (uc *CompanyUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(in.Name),
		Representative:    strings.TrimSpace(in.Representative),
		Phone:             strings.TrimSpace(in.Phone),
		Email:             strings.TrimSpace(in.Email),
		Address:           strings.TrimSpace(in.Address),
		LegalName:         strings.TrimSpace(in.LegalName),
		ManagementEnabled: in.ManagementEnabled,
		ProductsEnabled:   in.ProductsEnabled,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update modifica los campos presentes de la empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = name
	}
	setTrimmed(&company.Representative, in.Representative)
	setTrimmed(&company.Phone, in.Phone)
	setTrimmed(&company.Email, in.Email)
	setTrimmed(&company.Address, in.Address)
	setTrimmed(&company.LegalName, in.LegalName)
	if in.ManagementEnabled != nil {
		company.ManagementEnabled = *in.ManagementEnabled
	}
	if in.ProductsEnabled != nil {
		company.ProductsEnabled = *in.ProductsEnabled
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Fuera de master/admin solo la propia.
func (uc *CompanyUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.CompanyResponse, error) {
	if !policy.IsTopTier(actor.Role) && id != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación. Solo master y admin.
func (uc *CompanyUseCase) List(ctx context.Context, actor policy.Actor, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina la empresa. Se rechaza con domain.ErrHasDependents si aún tiene
// agentes, reservas, proveedores o facturas asociados; en ese caso no se borra nada.
func (uc *CompanyUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !policy.CanManageCompanies(actor) {
		return domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	deps, err := uc.repo.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if deps.Any() {
		uc.metrics.DeleteRefused("company")
		uc.log.Warn().
			Str("company_id", id).
			Int("agents", deps.Agents).
			Int("bookings", deps.Bookings).
			Int("suppliers", deps.Suppliers).
			Int("invoices", deps.Invoices).
			Msg("eliminación de empresa rechazada: tiene dependientes")
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// ListAll todas las empresas, sin paginar (exportaciones y selectores).
func (uc *CompanyUseCase) ListAll(ctx context.Context, actor policy.Actor) ([]*entity.Company, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	list, _, err := uc.repo.List(ctx, 0, 0)
	return list, err
}
