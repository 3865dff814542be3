package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para registrar la factura mensual de una empresa.
type CreateInvoiceRequest struct {
	CompanyID     string `json:"company_id" validate:"required,uuid"`
	Month         string `json:"month" validate:"required"` // YYYY-MM o "Marzo 2024"
	Amount        Amount `json:"amount"`
	Status        string `json:"status"` // "Pagado" | "No Pagado"
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
	Notes         string `json:"notes"`
}

// UpdateInvoiceRequest entrada para editar una factura (campos opcionales).
type UpdateInvoiceRequest struct {
	Month         *string `json:"month"`
	Amount        *Amount `json:"amount"`
	Status        *string `json:"status"`
	PaymentDate   *string `json:"payment_date"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
	Notes         *string `json:"notes"`
}

// InvoiceListRequest filtros del listado de facturas.
type InvoiceListRequest struct {
	PageRequest
	CompanyID string `query:"company_id"`
	Month     string `query:"month"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CompanyName   string          `json:"company_name,omitempty"`
	Month         string          `json:"month"`
	MonthLabel    string          `json:"month_label"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceListResponse lista paginada de facturas con el total facturado.
type InvoiceListResponse struct {
	Items       []InvoiceResponse `json:"items"`
	Page        PageResponse      `json:"page"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}
