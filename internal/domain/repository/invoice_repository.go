package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// InvoiceFilter criterios de listado de facturas.
type InvoiceFilter struct {
	CompanyID string
	Month     *time.Time // primer día del mes
	Limit     int
	Offset    int
}

// InvoiceRepository puerto de persistencia para facturas mensuales.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, int, error)
	Delete(ctx context.Context, id string) error
}
