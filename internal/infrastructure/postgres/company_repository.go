package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, representative, phone, email, address, legal_name,
	management_enabled, products_enabled, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Representative, c.Phone, c.Email, c.Address, c.LegalName,
		c.ManagementEnabled, c.ProductsEnabled, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza datos de contacto y banderas de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, representative = $3, phone = $4, email = $5, address = $6,
			legal_name = $7, management_enabled = $8, products_enabled = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Representative, c.Phone, c.Email, c.Address, c.LegalName,
		c.ManagementEnabled, c.ProductsEnabled, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update company", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empresas por nombre. limit <= 0 devuelve todas.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}
	query, args := page(`SELECT `+companyColumns+` FROM companies ORDER BY name`, nil, limit, offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "companies", id)
}

// CountDependents cuenta en una sola consulta los registros que referencian a la empresa.
func (r *CompanyRepo) CountDependents(ctx context.Context, id string) (entity.CompanyDependents, error) {
	var d entity.CompanyDependents
	if !validID(id) {
		return d, nil
	}
	query := `
		SELECT
			(SELECT COUNT(*) FROM agents WHERE company_id = $1),
			(SELECT COUNT(*) FROM bookings WHERE company_id = $1),
			(SELECT COUNT(*) FROM suppliers WHERE company_id = $1),
			(SELECT COUNT(*) FROM invoices WHERE company_id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&d.Agents, &d.Bookings, &d.Suppliers, &d.Invoices); err != nil {
		return d, fmt.Errorf("count company dependents: %w", err)
	}
	return d, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Representative, &c.Phone, &c.Email, &c.Address, &c.LegalName,
		&c.ManagementEnabled, &c.ProductsEnabled, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
