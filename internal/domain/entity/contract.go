package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract contrato firmado con un proveedor.
type Contract struct {
	ID          string
	SupplierID  string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string // texto libre: vigente, en negociación, vencido...
	Terms       string
	Attachment  Attachment
	State       Lifecycle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Catalog producto de catálogo de un proveedor: contrato más datos comerciales.
type Catalog struct {
	Contract
	BaseCost            decimal.Decimal
	SuggestedPrice      decimal.Decimal
	EstimatedCommission decimal.Decimal
	Includes            string
}
