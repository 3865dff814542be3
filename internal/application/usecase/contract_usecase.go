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
	"github.com/jhoicas/Ginebra-api/internal/domain/form"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// documents lógica común de contratos y catálogos: ambos pertenecen a un proveedor,
// tienen comprobante PDF opcional y baja lógica.
type documents[T any] struct {
	kind      entity.AttachmentKind
	manifest  form.Manifest[T]
	contract  func(*T) *entity.Contract
	store     documentStore[T]
	suppliers repository.SupplierRepository
	lc        lifecycle[T]
	log       *logger.Logger
	now       func() time.Time
}

// documentStore subconjunto del repositorio que usa documents.
type documentStore[T any] interface {
	repository.LifecycleRepository[T]
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	List(ctx context.Context, f repository.ContractFilter) ([]*T, int, error)
	GetAttachment(ctx context.Context, id string) (*entity.Attachment, error)
}

func newDocuments[T any](name string, kind entity.AttachmentKind, manifest form.Manifest[T], contract func(*T) *entity.Contract,
	store documentStore[T], suppliers repository.SupplierRepository, metrics ports.Metrics, log *logger.Logger) *documents[T] {
	d := &documents[T]{kind: kind, manifest: manifest, contract: contract, store: store, suppliers: suppliers, log: log, now: time.Now}
	d.lc = lifecycle[T]{
		name: name,
		repo: store,
		scope: func(ctx context.Context, actor policy.Actor, item *T) error {
			_, err := d.supplier(ctx, actor, contract(item).SupplierID)
			return err
		},
		metrics: metrics,
		log:     log,
	}
	return d
}

func (d *documents[T]) supplier(ctx context.Context, actor policy.Actor, id string) (*entity.Supplier, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: proveedor requerido", domain.ErrInvalidInput)
	}
	s, err := d.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := scopeSupplier(actor, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *documents[T]) save(ctx context.Context, actor policy.Actor, id string, values map[string]string, upload *dto.Upload) (*T, string, error) {
	var warning string
	if upload != nil {
		if err := entity.ValidateAttachment(upload.Filename, upload.Size, upload.Content); err != nil {
			warning = err.Error()
			upload = nil
		}
	}
	now := d.now()

	var item *T
	if id == "" {
		item = new(T)
		c := d.contract(item)
		c.ID = uuid.New().String()
		c.State = entity.LifecycleActive
		c.CreatedAt = now
	} else {
		loaded, err := d.lc.load(ctx, actor, id)
		if err != nil {
			return nil, "", err
		}
		item = loaded
	}
	c := d.contract(item)
	if sid, ok := values["supplier_id"]; ok || id == "" {
		s, err := d.supplier(ctx, actor, strings.TrimSpace(sid))
		if err != nil {
			return nil, "", err
		}
		if s.State == entity.LifecycleInactive && s.ID != c.SupplierID {
			return nil, "", fmt.Errorf("%w: el proveedor está inactivo", domain.ErrConflict)
		}
		c.SupplierID = s.ID
	}
	d.manifest.Apply(item, values)
	if c.Name == "" {
		return nil, "", fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if upload != nil {
		c.Attachment = entity.Attachment{
			Name:    entity.AttachmentName(d.kind, c.ID, upload.Filename, now),
			Size:    upload.Size,
			Content: upload.Content,
		}
	}
	c.UpdatedAt = now

	var err error
	if id == "" {
		err = d.store.Create(ctx, item)
	} else {
		err = d.store.Update(ctx, item)
	}
	if err != nil {
		return nil, "", err
	}
	if warning != "" && d.log != nil {
		d.log.Warn().Str("id", c.ID).Str("kind", string(d.kind)).Str("reason", warning).Msg("comprobante rechazado")
	}
	return item, warning, nil
}

func (d *documents[T]) filter(actor policy.Actor, in dto.LifecycleListRequest) repository.ContractFilter {
	return repository.ContractFilter{
		SupplierID:      in.SupplierID,
		CompanyID:       policy.ScopeCompany(actor, in.CompanyID),
		IncludeInactive: in.IncludeInactive,
	}
}

func (d *documents[T]) list(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest, paged bool) ([]*T, dto.PageResponse, error) {
	f := d.filter(actor, in)
	if paged {
		in.DefaultPage()
		f.Limit, f.Offset = in.Limit, in.Offset
	}
	list, total, err := d.store.List(ctx, f)
	return list, dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total}, err
}

func (d *documents[T]) attachment(ctx context.Context, actor policy.Actor, id string) (*entity.Attachment, error) {
	if _, err := d.lc.load(ctx, actor, id); err != nil {
		return nil, err
	}
	att, err := d.store.GetAttachment(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil || !att.Present() {
		return nil, domain.ErrNotFound
	}
	return att, nil
}

// ContractUseCase contratos y catálogos de proveedores.
type ContractUseCase struct {
	contracts *documents[entity.Contract]
	catalogs  *documents[entity.Catalog]
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(contracts repository.ContractRepository, catalogs repository.CatalogRepository,
	suppliers repository.SupplierRepository, metrics ports.Metrics, log *logger.Logger) *ContractUseCase {
	return &ContractUseCase{
		contracts: newDocuments[entity.Contract]("contract", entity.AttachmentContract, contractManifest,
			func(c *entity.Contract) *entity.Contract { return c }, contracts, suppliers, metrics, log),
		catalogs: newDocuments[entity.Catalog]("catalog", entity.AttachmentCatalog, catalogManifest,
			func(c *entity.Catalog) *entity.Contract { return &c.Contract }, catalogs, suppliers, metrics, log),
	}
}

// ── Contratos ─────────────────────────────────────────────────────────────────

// SaveContract crea (id vacío) o modifica un contrato. Un adjunto rechazado se informa
// en AttachmentWarning y el contrato se guarda sin él.
func (uc *ContractUseCase) SaveContract(ctx context.Context, actor policy.Actor, id string, values map[string]string, upload *dto.Upload) (*dto.SaveDocumentResponse[dto.ContractResponse], error) {
	c, warning, err := uc.contracts.save(ctx, actor, id, values, upload)
	if err != nil {
		return nil, err
	}
	return &dto.SaveDocumentResponse[dto.ContractResponse]{Item: *toContractResponse(c), AttachmentWarning: warning}, nil
}

// GetContract devuelve un contrato.
func (uc *ContractUseCase) GetContract(ctx context.Context, actor policy.Actor, id string) (*dto.ContractResponse, error) {
	c, err := uc.contracts.lc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// ListContracts lista contratos paginados.
func (uc *ContractUseCase) ListContracts(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) (*dto.ContractListResponse, error) {
	list, page, err := uc.contracts.list(ctx, actor, in, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c))
	}
	return &dto.ContractListResponse{Items: items, Page: page}, nil
}

// ListAllContracts sin paginar (exportaciones).
func (uc *ContractUseCase) ListAllContracts(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]*entity.Contract, error) {
	list, _, err := uc.contracts.list(ctx, actor, in, false)
	return list, err
}

// ContractAttachment comprobante del contrato.
func (uc *ContractUseCase) ContractAttachment(ctx context.Context, actor policy.Actor, id string) (*entity.Attachment, error) {
	return uc.contracts.attachment(ctx, actor, id)
}

// DeactivateContract baja lógica.
func (uc *ContractUseCase) DeactivateContract(ctx context.Context, actor policy.Actor, id string) error {
	return uc.contracts.lc.deactivate(ctx, actor, id)
}

// ReactivateContract reactivación.
func (uc *ContractUseCase) ReactivateContract(ctx context.Context, actor policy.Actor, id string) error {
	return uc.contracts.lc.reactivate(ctx, actor, id)
}

// PurgeContract borrado definitivo.
func (uc *ContractUseCase) PurgeContract(ctx context.Context, actor policy.Actor, id string) error {
	return uc.contracts.lc.purge(ctx, actor, id)
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

// SaveCatalog crea (id vacío) o modifica un catálogo.
func (uc *ContractUseCase) SaveCatalog(ctx context.Context, actor policy.Actor, id string, values map[string]string, upload *dto.Upload) (*dto.SaveDocumentResponse[dto.CatalogResponse], error) {
	c, warning, err := uc.catalogs.save(ctx, actor, id, values, upload)
	if err != nil {
		return nil, err
	}
	return &dto.SaveDocumentResponse[dto.CatalogResponse]{Item: *toCatalogResponse(c), AttachmentWarning: warning}, nil
}

// GetCatalog devuelve un catálogo.
func (uc *ContractUseCase) GetCatalog(ctx context.Context, actor policy.Actor, id string) (*dto.CatalogResponse, error) {
	c, err := uc.catalogs.lc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(c), nil
}

// ListCatalogs lista catálogos paginados.
func (uc *ContractUseCase) ListCatalogs(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) (*dto.CatalogListResponse, error) {
	list, page, err := uc.catalogs.list(ctx, actor, in, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCatalogResponse(c))
	}
	return &dto.CatalogListResponse{Items: items, Page: page}, nil
}

// ListAllCatalogs sin paginar (exportaciones).
func (uc *ContractUseCase) ListAllCatalogs(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]*entity.Catalog, error) {
	list, _, err := uc.catalogs.list(ctx, actor, in, false)
	return list, err
}

// CatalogAttachment comprobante del catálogo.
func (uc *ContractUseCase) CatalogAttachment(ctx context.Context, actor policy.Actor, id string) (*entity.Attachment, error) {
	return uc.catalogs.attachment(ctx, actor, id)
}

// DeactivateCatalog baja lógica.
func (uc *ContractUseCase) DeactivateCatalog(ctx context.Context, actor policy.Actor, id string) error {
	return uc.catalogs.lc.deactivate(ctx, actor, id)
}

// ReactivateCatalog reactivación.
func (uc *ContractUseCase) ReactivateCatalog(ctx context.Context, actor policy.Actor, id string) error {
	return uc.catalogs.lc.reactivate(ctx, actor, id)
}

// PurgeCatalog borrado definitivo.
func (uc *ContractUseCase) PurgeCatalog(ctx context.Context, actor policy.Actor, id string) error {
	return uc.catalogs.lc.purge(ctx, actor, id)
}
