package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LifecycleListRequest filtros comunes de proveedores, contratos y catálogos.
type LifecycleListRequest struct {
	PageRequest
	IncludeInactive bool   `query:"include_inactive"`
	Search          string `query:"q"`
	CompanyID       string `query:"company_id"`
	SupplierID      string `query:"supplier_id"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	Address         string     `json:"address"`
	Kind            string     `json:"kind"`
	Service         string     `json:"service"`
	ContactName     string     `json:"contact_name"`
	ContactEmail    string     `json:"contact_email"`
	ContactPhone    string     `json:"contact_phone"`
	CommercialTerms string     `json:"commercial_terms"`
	OperatingArea   string     `json:"operating_area"`
	LastNegotiation *time.Time `json:"last_negotiation,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	State           string     `json:"state"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID          string              `json:"id"`
	SupplierID  string              `json:"supplier_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	StartDate   *time.Time          `json:"start_date,omitempty"`
	EndDate     *time.Time          `json:"end_date,omitempty"`
	Status      string              `json:"status"`
	Terms       string              `json:"terms"`
	Attachment  *AttachmentResponse `json:"attachment,omitempty"`
	State       string              `json:"state"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ContractListResponse lista paginada de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CatalogResponse salida de un catálogo.
type CatalogResponse struct {
	ContractResponse
	BaseCost            decimal.Decimal `json:"base_cost"`
	SuggestedPrice      decimal.Decimal `json:"suggested_price"`
	EstimatedCommission decimal.Decimal `json:"estimated_commission"`
	Includes            string          `json:"includes"`
}

// CatalogListResponse lista paginada de catálogos.
type CatalogListResponse struct {
	Items []CatalogResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SaveDocumentResponse resultado de crear/editar contrato o catálogo con adjunto opcional.
type SaveDocumentResponse[T any] struct {
	Item              T      `json:"item"`
	AttachmentWarning string `json:"attachment_warning,omitempty"`
}
