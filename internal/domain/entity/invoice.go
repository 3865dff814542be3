package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de pago de la factura mensual.
type InvoiceStatus string

const (
	InvoicePaid   InvoiceStatus = "Pagado"
	InvoiceUnpaid InvoiceStatus = "No Pagado"
)

// Invoice factura mensual emitida a una empresa. Registro contable independiente de las reservas.
type Invoice struct {
	ID            string
	CompanyID     string
	Month         time.Time // primer día del mes
	Amount        decimal.Decimal
	Status        InvoiceStatus
	PaymentDate   *time.Time
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MonthKey devuelve el mes como "YYYY-MM".
func (i *Invoice) MonthKey() string { return i.Month.Format("2006-01") }
