package usecase

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

// ExportUseCase exporta listados y reportes a XLSX y la liquidación a PDF.
// Reutiliza los casos de uso de consulta, así que aplica las mismas reglas de visibilidad.
type ExportUseCase struct {
	agents    *AgentUseCase
	companies *CompanyUseCase
	bookings  *BookingUseCase
	suppliers *SupplierUseCase
	contracts *ContractUseCase
	invoices  *InvoiceUseCase
	reports   *ReportUseCase
	xlsx      ports.SpreadsheetWriter
	pdf       ports.SettlementPDFGenerator
}

// ExportDeps dependencias de ExportUseCase.
type ExportDeps struct {
	Agents    *AgentUseCase
	Companies *CompanyUseCase
	Bookings  *BookingUseCase
	Suppliers *SupplierUseCase
	Contracts *ContractUseCase
	Invoices  *InvoiceUseCase
	Reports   *ReportUseCase
	XLSX      ports.SpreadsheetWriter
	PDF       ports.SettlementPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(d ExportDeps) *ExportUseCase {
	return &ExportUseCase{
		agents: d.Agents, companies: d.Companies, bookings: d.Bookings,
		suppliers: d.Suppliers, contracts: d.Contracts, invoices: d.Invoices,
		reports: d.Reports, xlsx: d.XLSX, pdf: d.PDF,
	}
}

var bookingHeaders = []string{
	"Fecha venta", "Fecha viaje", "Producto", "Modo de pago", "Pasajero", "Teléfono", "Correo",
	"Localizadores", "Ejecutivo", "Correo ejecutivo", "Destino", "Precio venta",
	"Hotel", "Vuelo", "Traslado", "Seguro", "Tour", "Crucero", "Excursión", "Paquete",
	"Costo neto", "Bonos", "Ganancia bruta", "Comisión agente", "Ganancia neta",
	"Pago", "Cobro", "Emisión", "Comentarios",
}

func bookingRow(b *entity.Booking) []any {
	return []any{
		b.SaleDate, b.TravelDate, b.Product, b.PaymentMode, b.PassengerName, b.PassengerPhone, b.PassengerEmail,
		b.Locators, b.ExecutiveName, b.ExecutiveEmail, b.Destination, b.SalePrice,
		b.Costs.Hotel, b.Costs.Flight, b.Costs.Transfer, b.Costs.Insurance, b.Costs.Tour, b.Costs.Cruise,
		b.Costs.Excursion, b.Costs.Package,
		b.NetCost, b.Bonus, b.GrossProfit, b.AgentCommission, b.AgencyMargin,
		string(b.PaymentStatus), string(b.CollectionStatus), string(b.IssuanceStatus), b.Comments,
	}
}

// Bookings reservas visibles para el actor.
func (uc *ExportUseCase) Bookings(ctx context.Context, actor policy.Actor, in dto.BookingListRequest) ([]byte, error) {
	list, err := uc.bookings.ListAll(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Reservas", Headers: bookingHeaders}
	for _, b := range list {
		sheet.Rows = append(sheet.Rows, bookingRow(b))
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Agents agentes visibles para el actor.
func (uc *ExportUseCase) Agents(ctx context.Context, actor policy.Actor, companyID string) ([]byte, error) {
	list, err := uc.agents.ListAll(ctx, actor, companyID)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Agentes", Headers: []string{
		"Usuario", "Nombre", "Apellidos", "RUT", "Correo", "Teléfono", "Rol", "Estado",
		"Comisión %", "Sueldo", "Fecha ingreso",
	}}
	for _, a := range list {
		sheet.Rows = append(sheet.Rows, []any{
			a.Username, a.FirstName, a.LastName, a.NationalID, a.Email, a.Phone, string(a.Role), string(a.Status),
			a.CommissionRate, a.Salary, a.HireDate,
		})
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Companies todas las empresas (master y admin).
func (uc *ExportUseCase) Companies(ctx context.Context, actor policy.Actor) ([]byte, error) {
	list, err := uc.companies.ListAll(ctx, actor)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Empresas", Headers: []string{
		"Nombre", "Razón social", "Representante", "Correo", "Teléfono", "Dirección", "Gestión", "Productos",
	}}
	for _, c := range list {
		sheet.Rows = append(sheet.Rows, []any{
			c.Name, c.LegalName, c.Representative, c.Email, c.Phone, c.Address,
			yesNo(c.ManagementEnabled), yesNo(c.ProductsEnabled),
		})
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Suppliers proveedores en el alcance del actor.
func (uc *ExportUseCase) Suppliers(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]byte, error) {
	list, err := uc.suppliers.ListAll(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Proveedores", Headers: []string{
		"Nombre", "Ubicación", "Dirección", "Tipo", "Servicio", "Contacto", "Correo", "Teléfono",
		"Condiciones comerciales", "Zona", "Última negociación", "Vigencia", "Estado",
	}}
	for _, s := range list {
		sheet.Rows = append(sheet.Rows, []any{
			s.Name, s.Location, s.Address, s.Kind, s.Service, s.ContactName, s.ContactEmail, s.ContactPhone,
			s.CommercialTerms, s.OperatingArea, s.LastNegotiation, s.ValidUntil, string(s.State),
		})
	}
	return uc.xlsx.Write(ctx, sheet)
}

var contractHeaders = []string{"Proveedor", "Nombre", "Descripción", "Inicio", "Término", "Estado", "Condiciones", "Comprobante", "Vigencia"}

func contractRow(c *entity.Contract) []any {
	return []any{c.SupplierID, c.Name, c.Description, c.StartDate, c.EndDate, c.Status, c.Terms, c.Attachment.Name, string(c.State)}
}

// Contracts contratos en el alcance del actor.
func (uc *ExportUseCase) Contracts(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]byte, error) {
	list, err := uc.contracts.ListAllContracts(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Contratos", Headers: contractHeaders}
	for _, c := range list {
		sheet.Rows = append(sheet.Rows, contractRow(c))
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Catalogs catálogos en el alcance del actor.
func (uc *ExportUseCase) Catalogs(ctx context.Context, actor policy.Actor, in dto.LifecycleListRequest) ([]byte, error) {
	list, err := uc.contracts.ListAllCatalogs(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	headers := append(append([]string{}, contractHeaders...), "Costo base", "Precio sugerido", "Comisión estimada", "Incluye")
	sheet := ports.Sheet{Name: "Catálogos", Headers: headers}
	for _, c := range list {
		sheet.Rows = append(sheet.Rows, append(contractRow(&c.Contract), c.BaseCost, c.SuggestedPrice, c.EstimatedCommission, c.Includes))
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Invoices facturas (master y admin).
func (uc *ExportUseCase) Invoices(ctx context.Context, actor policy.Actor, in dto.InvoiceListRequest) ([]byte, error) {
	list, err := uc.invoices.ListAll(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Facturas", Headers: []string{"Empresa", "Mes", "Monto", "Estado", "Fecha de pago", "Medio de pago", "Notas"}}
	for _, i := range list {
		sheet.Rows = append(sheet.Rows, []any{i.CompanyName, i.MonthLabel, i.Amount, i.Status, i.PaymentDate, i.PaymentMethod, i.Notes})
	}
	return uc.xlsx.Write(ctx, sheet)
}

var commissionHeaders = []string{
	"Fecha venta", "Ejecutivo", "Pasajero", "Destino", "Precio venta", "Costo neto", "Ganancia bruta",
	"Comisión %", "Comisión agente", "Ganancia neta", "Bonos", "Pago",
}

// CommissionPanel panel de comisiones con una fila por reserva y la fila de totales.
func (uc *ExportUseCase) CommissionPanel(ctx context.Context, actor policy.Actor, req dto.ReportRequest) ([]byte, error) {
	panel, err := uc.reports.CommissionPanel(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Comisiones", Headers: commissionHeaders}
	for _, e := range panel.Entries {
		sheet.Rows = append(sheet.Rows, []any{
			e.SaleDate, e.Executive, e.PassengerName, e.Destination, e.SalePrice, e.NetCost, e.GrossProfit,
			e.CommissionRate, e.AgentCommission, e.AgencyMargin, e.Bonus, e.PaymentStatus,
		})
	}
	t := panel.Totals
	sheet.Rows = append(sheet.Rows, []any{
		"Total", "", "", "", t.SalePrice, t.NetCost, t.GrossProfit, "", t.AgentCommission, t.AgencyMargin, t.Bonus, "",
	})
	return uc.xlsx.Write(ctx, sheet)
}

// SalesDetail detalle de ventas por ejecutivo.
func (uc *ExportUseCase) SalesDetail(ctx context.Context, actor policy.Actor, req dto.ReportRequest) ([]byte, error) {
	r, err := uc.reports.SalesDetail(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Detalle de ventas", Headers: []string{
		"Ejecutivo", "Reservas", "Precio venta", "Costo neto", "Ganancia bruta", "Comisión agente", "Ganancia neta", "Venta promedio",
	}}
	for _, row := range append(r.Rows, dto.ReportRowDTO{Key: "Total", Label: "Total", TotalsDTO: r.Totals}) {
		sheet.Rows = append(sheet.Rows, []any{
			row.Label, row.Count, row.SalePrice, row.NetCost, row.GrossProfit, row.AgentCommission, row.AgencyMargin, row.AverageSale,
		})
	}
	return uc.xlsx.Write(ctx, sheet)
}

// Marketing contactos de pasajeros del período.
func (uc *ExportUseCase) Marketing(ctx context.Context, actor policy.Actor, req dto.ReportRequest) ([]byte, error) {
	m, err := uc.reports.Marketing(ctx, actor, req)
	if err != nil {
		return nil, err
	}
	sheet := ports.Sheet{Name: "Marketing", Headers: []string{"Pasajero", "Correo", "Teléfono", "Destino", "Fecha viaje", "Ejecutivo"}}
	for _, c := range m.Contacts {
		sheet.Rows = append(sheet.Rows, []any{c.PassengerName, c.PassengerEmail, c.PassengerPhone, c.Destination, c.TravelDate, c.Executive})
	}
	return uc.xlsx.Write(ctx, sheet)
}

// SettlementPDF liquidación de un ejecutivo en PDF.
func (uc *ExportUseCase) SettlementPDF(ctx context.Context, actor policy.Actor, req dto.ReportRequest, key string) ([]byte, error) {
	doc, err := uc.reports.SettlementDocument(ctx, actor, req, key)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSettlementPDF(ctx, *doc)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
