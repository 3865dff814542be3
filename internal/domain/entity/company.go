package entity

import "time"

// Company representa una empresa cliente (tenant): agrupa agentes, reservas, proveedores y facturas.
// ManagementEnabled habilita los flujos de reservas; ProductsEnabled los de proveedores,
// contratos y catálogos. master y admin no dependen de estas banderas.
type Company struct {
	ID                string
	Name              string
	Representative    string
	Phone             string
	Email             string
	Address           string
	LegalName         string // razón social
	ManagementEnabled bool
	ProductsEnabled   bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Features habilitables por empresa.
const (
	FeatureManagement = "gestion"
	FeatureProducts   = "productos"
)

// HasFeature informa si la empresa tiene la feature habilitada.
func (c *Company) HasFeature(feature string) bool {
	switch feature {
	case FeatureManagement:
		return c.ManagementEnabled
	case FeatureProducts:
		return c.ProductsEnabled
	}
	return false
}

// CompanyDependents cuenta los registros que referencian a una empresa.
type CompanyDependents struct {
	Agents    int
	Bookings  int
	Suppliers int
	Invoices  int
}

// Any informa si existe al menos un dependiente.
func (d CompanyDependents) Any() bool {
	return d.Agents+d.Bookings+d.Suppliers+d.Invoices > 0
}
