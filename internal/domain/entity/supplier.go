package entity

import "time"

// Supplier proveedor de servicios turísticos de una empresa.
type Supplier struct {
	ID              string
	CompanyID       string
	Name            string
	Location        string // país / ciudad
	Address         string
	Kind            string // tipo de proveedor
	Service         string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	CommercialTerms string
	OperatingArea   string
	LastNegotiation *time.Time
	ValidUntil      *time.Time
	State           Lifecycle
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SupplierDependents contratos y catálogos (activos o no) asociados a un proveedor.
type SupplierDependents struct {
	Contracts int
	Catalogs  int
}

// Any informa si existe al menos un dependiente.
func (d SupplierDependents) Any() bool { return d.Contracts+d.Catalogs > 0 }
