package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/form"
)

var supplierManifest = form.Manifest[entity.Supplier]{
	form.Text("name", func(s *entity.Supplier, v string) { s.Name = v }),
	form.Text("location", func(s *entity.Supplier, v string) { s.Location = v }),
	form.Text("address", func(s *entity.Supplier, v string) { s.Address = v }),
	form.Text("kind", func(s *entity.Supplier, v string) { s.Kind = v }),
	form.Text("service", func(s *entity.Supplier, v string) { s.Service = v }),
	form.Text("contact_name", func(s *entity.Supplier, v string) { s.ContactName = v }),
	form.Text("contact_email", func(s *entity.Supplier, v string) { s.ContactEmail = v }),
	form.Text("contact_phone", func(s *entity.Supplier, v string) { s.ContactPhone = v }),
	form.Text("commercial_terms", func(s *entity.Supplier, v string) { s.CommercialTerms = v }),
	form.Text("operating_area", func(s *entity.Supplier, v string) { s.OperatingArea = v }),
	form.Date("last_negotiation", func(s *entity.Supplier, v *time.Time) { s.LastNegotiation = v }),
	form.Date("valid_until", func(s *entity.Supplier, v *time.Time) { s.ValidUntil = v }),
}

var contractManifest = form.Manifest[entity.Contract]{
	form.Text("name", func(c *entity.Contract, v string) { c.Name = v }),
	form.Text("description", func(c *entity.Contract, v string) { c.Description = v }),
	form.Date("start_date", func(c *entity.Contract, v *time.Time) { c.StartDate = v }),
	form.Date("end_date", func(c *entity.Contract, v *time.Time) { c.EndDate = v }),
	form.Text("status", func(c *entity.Contract, v string) { c.Status = v }),
	form.Text("terms", func(c *entity.Contract, v string) { c.Terms = v }),
}

var catalogManifest = append(
	form.Embed(contractManifest, func(c *entity.Catalog) *entity.Contract { return &c.Contract }),
	form.Money("base_cost", func(c *entity.Catalog, v decimal.Decimal) { c.BaseCost = v }),
	form.Money("suggested_price", func(c *entity.Catalog, v decimal.Decimal) { c.SuggestedPrice = v }),
	form.Money("estimated_commission", func(c *entity.Catalog, v decimal.Decimal) { c.EstimatedCommission = v }),
	form.Text("includes", func(c *entity.Catalog, v string) { c.Includes = v }),
)
