package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, company_id, name, location, address, kind, service, contact_name,
	contact_email, contact_phone, commercial_terms, operating_area, last_negotiation, valid_until,
	state, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	db Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(db Querier) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES (` + placeholders(17) + `)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.CompanyID, s.Name, s.Location, s.Address, s.Kind, s.Service, s.ContactName,
		s.ContactEmail, s.ContactPhone, s.CommercialTerms, s.OperatingArea, s.LastNegotiation, s.ValidUntil,
		string(s.State), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert supplier", err)
	}
	return nil
}

// Update reescribe los datos editables del proveedor. El estado se cambia con SetState.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, location = $3, address = $4, kind = $5, service = $6,
			contact_name = $7, contact_email = $8, contact_phone = $9, commercial_terms = $10,
			operating_area = $11, last_negotiation = $12, valid_until = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Location, s.Address, s.Kind, s.Service,
		s.ContactName, s.ContactEmail, s.ContactPhone, s.CommercialTerms,
		s.OperatingArea, s.LastNegotiation, s.ValidUntil, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("update supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un proveedor activo o no.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSupplier(r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// SetState da de baja o reactiva.
func (r *SupplierRepo) SetState(ctx context.Context, id string, state entity.Lifecycle) error {
	return setState(ctx, r.db, "suppliers", id, state)
}

// Delete borra definitivamente; la FK de contratos y catálogos lo impide si quedan dependientes.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "suppliers", id)
}

// List lista proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	var w where
	if f.CompanyID != "" {
		w.add("company_id::text = ?", f.CompanyID)
	}
	if !f.IncludeInactive {
		w.add("state = ?", string(entity.LifecycleActive))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		w.add("(name ILIKE ? OR service ILIKE ? OR location ILIKE ?)", "%"+s+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}
	query, args := page(`SELECT `+supplierColumns+` FROM suppliers`+w.String()+` ORDER BY name`, w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// CountDependents cuenta contratos y catálogos sin importar su estado.
func (r *SupplierRepo) CountDependents(ctx context.Context, id string) (entity.SupplierDependents, error) {
	var d entity.SupplierDependents
	if !validID(id) {
		return d, nil
	}
	query := `
		SELECT
			(SELECT COUNT(*) FROM contracts WHERE supplier_id = $1),
			(SELECT COUNT(*) FROM catalogs WHERE supplier_id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&d.Contracts, &d.Catalogs); err != nil {
		return d, fmt.Errorf("count supplier dependents: %w", err)
	}
	return d, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var state string
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Location, &s.Address, &s.Kind, &s.Service, &s.ContactName,
		&s.ContactEmail, &s.ContactPhone, &s.CommercialTerms, &s.OperatingArea, &s.LastNegotiation, &s.ValidUntil,
		&state, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.State = entity.Lifecycle(state)
	return &s, nil
}
