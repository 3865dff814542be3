package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, company_id, month, amount, status, payment_date, payment_method, notes, created_at, updated_at`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	db Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas mensuales.
func NewInvoiceRepository(db Querier) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create persiste una factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `) VALUES (` + placeholders(10) + `)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.Month, inv.Amount, string(inv.Status), inv.PaymentDate,
		inv.PaymentMethod, inv.Notes, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert invoice", err)
	}
	return nil
}

// Update actualiza mes, monto, estado y datos de pago.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET month = $2, amount = $3, status = $4, payment_date = $5,
			payment_method = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		inv.ID, inv.Month, inv.Amount, string(inv.Status), inv.PaymentDate, inv.PaymentMethod, inv.Notes, inv.UpdatedAt,
	)
	if err != nil {
		return writeErr("update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !validID(id) {
		return nil, nil
	}
	inv, err := scanInvoice(r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista facturas del mes más reciente al más antiguo.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, int, error) {
	var w where
	if f.CompanyID != "" {
		w.add("company_id::text = ?", f.CompanyID)
	}
	if f.Month != nil {
		w.add("month = ?", *f.Month)
	}
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}
	query, args := page(`SELECT `+invoiceColumns+` FROM invoices`+w.String()+` ORDER BY month DESC, created_at DESC`,
		w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, total, rows.Err()
}

// Delete elimina una factura.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "invoices", id)
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var status string
	err := row.Scan(&inv.ID, &inv.CompanyID, &inv.Month, &inv.Amount, &status, &inv.PaymentDate,
		&inv.PaymentMethod, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}
