package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var (
	_ repository.ContractRepository = (*ContractRepo)(nil)
	_ repository.CatalogRepository  = (*CatalogRepo)(nil)
)

// documentColumns columnas comunes a contracts y catalogs, sin el contenido del adjunto.
const documentColumns = `id, supplier_id, name, description, start_date, end_date, status, terms,
	attachment_name, attachment_size, state, created_at, updated_at`

const catalogColumns = documentColumns + `, base_cost, suggested_price, estimated_commission, includes`

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	db Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(db Querier) *ContractRepo {
	return &ContractRepo{db: db}
}

func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	args := append(documentArgs(c), c.Attachment.Content)
	query := `INSERT INTO contracts (` + documentColumns + `, attachment) VALUES (` + placeholders(len(args)) + `)`
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return writeErr("insert contract", err)
	}
	return nil
}

func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	return updateDocument(ctx, r.db, "contracts", c, "", nil)
}

func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanContract(r.db.QueryRow(ctx, `SELECT `+documentColumns+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

func (r *ContractRepo) SetState(ctx context.Context, id string, state entity.Lifecycle) error {
	return setState(ctx, r.db, "contracts", id, state)
}

func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "contracts", id)
}

func (r *ContractRepo) GetAttachment(ctx context.Context, id string) (*entity.Attachment, error) {
	return getAttachment(ctx, r.db, "contracts", id)
}

// List lista contratos por fecha de inicio descendente.
func (r *ContractRepo) List(ctx context.Context, f repository.ContractFilter) ([]*entity.Contract, int, error) {
	w := documentWhere("contracts", f)
	total, err := countDocuments(ctx, r.db, "contracts", w)
	if err != nil {
		return nil, 0, err
	}
	query, args := page(`SELECT `+documentColumns+` FROM contracts`+w.String()+
		` ORDER BY start_date DESC NULLS LAST, name`, w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	db Querier
}

// NewCatalogRepository construye el adaptador de persistencia para catálogos.
func NewCatalogRepository(db Querier) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	args := append(documentArgs(&c.Contract), c.BaseCost, c.SuggestedPrice, c.EstimatedCommission, c.Includes, c.Attachment.Content)
	query := `INSERT INTO catalogs (` + catalogColumns + `, attachment) VALUES (` + placeholders(len(args)) + `)`
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return writeErr("insert catalog", err)
	}
	return nil
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	return updateDocument(ctx, r.db, "catalogs", &c.Contract,
		`, base_cost = ?, suggested_price = ?, estimated_commission = ?, includes = ?`,
		[]any{c.BaseCost, c.SuggestedPrice, c.EstimatedCommission, c.Includes})
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanCatalog(r.db.QueryRow(ctx, `SELECT `+catalogColumns+` FROM catalogs WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

func (r *CatalogRepo) SetState(ctx context.Context, id string, state entity.Lifecycle) error {
	return setState(ctx, r.db, "catalogs", id, state)
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "catalogs", id)
}

func (r *CatalogRepo) GetAttachment(ctx context.Context, id string) (*entity.Attachment, error) {
	return getAttachment(ctx, r.db, "catalogs", id)
}

// List lista catálogos por nombre.
func (r *CatalogRepo) List(ctx context.Context, f repository.ContractFilter) ([]*entity.Catalog, int, error) {
	w := documentWhere("catalogs", f)
	total, err := countDocuments(ctx, r.db, "catalogs", w)
	if err != nil {
		return nil, 0, err
	}
	query, args := page(`SELECT `+catalogColumns+` FROM catalogs`+w.String()+` ORDER BY name`, w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan catalog: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func documentArgs(c *entity.Contract) []any {
	return []any{
		c.ID, c.SupplierID, c.Name, c.Description, c.StartDate, c.EndDate, c.Status, c.Terms,
		c.Attachment.Name, c.Attachment.Size, string(c.State), c.CreatedAt, c.UpdatedAt,
	}
}

// updateDocument reescribe las columnas comunes más extra (con "?" como placeholder).
// El adjunto solo se reemplaza cuando c trae contenido nuevo.
func updateDocument(ctx context.Context, db Querier, table string, c *entity.Contract, extra string, extraArgs []any) error {
	query := `UPDATE ` + table + ` SET supplier_id = $2, name = $3, description = $4, start_date = $5,
		end_date = $6, status = $7, terms = $8, updated_at = $9`
	args := []any{c.ID, c.SupplierID, c.Name, c.Description, c.StartDate, c.EndDate, c.Status, c.Terms, c.UpdatedAt}
	if c.Attachment.Content != nil {
		extra += `, attachment_name = ?, attachment_size = ?, attachment = ?`
		extraArgs = append(extraArgs, c.Attachment.Name, c.Attachment.Size, c.Attachment.Content)
	}
	for _, arg := range extraArgs {
		args = append(args, arg)
		extra = replaceFirst(extra, "?", fmt.Sprintf("$%d", len(args)))
	}
	tag, err := db.Exec(ctx, query+extra+` WHERE id = $1`, args...)
	if err != nil {
		return writeErr("update "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// documentWhere filtra por proveedor, empresa del proveedor y estado.
func documentWhere(table string, f repository.ContractFilter) where {
	var w where
	if f.SupplierID != "" {
		w.add(table+".supplier_id::text = ?", f.SupplierID)
	}
	if f.CompanyID != "" {
		w.add(table+".supplier_id IN (SELECT id FROM suppliers WHERE company_id::text = ?)", f.CompanyID)
	}
	if !f.IncludeInactive {
		w.add(table+".state = ?", string(entity.LifecycleActive))
	}
	return w
}

func countDocuments(ctx context.Context, db Querier, table string, w where) (int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table+w.String(), w.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

func contractDest(c *entity.Contract, state *string) []any {
	return []any{
		&c.ID, &c.SupplierID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.Status, &c.Terms,
		&c.Attachment.Name, &c.Attachment.Size, state, &c.CreatedAt, &c.UpdatedAt,
	}
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	var state string
	if err := row.Scan(contractDest(&c, &state)...); err != nil {
		return nil, err
	}
	c.State = entity.Lifecycle(state)
	return &c, nil
}

func scanCatalog(row pgx.Row) (*entity.Catalog, error) {
	var c entity.Catalog
	var state string
	dest := append(contractDest(&c.Contract, &state), &c.BaseCost, &c.SuggestedPrice, &c.EstimatedCommission, &c.Includes)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.State = entity.Lifecycle(state)
	return &c, nil
}
