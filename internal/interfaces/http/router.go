package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/auth"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	AgentUC    *usecase.AgentUseCase
	CompanyUC  *usecase.CompanyUseCase
	BookingUC  *usecase.BookingUseCase
	SupplierUC *usecase.SupplierUseCase
	ContractUC *usecase.ContractUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	ReportUC   *usecase.ReportUseCase
	ExportUC   *usecase.ExportUseCase
	Features   *usecase.FeatureService
	Selection  ports.SelectionStore
	JWTSecret  string
	// MaxUploadBytes tamaño máximo de adjunto que se lee en memoria.
	MaxUploadBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	scope := sessionScope{store: deps.Selection}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	reports := NewReportHandler(deps.ReportUC, scope)
	protected.Get("/reports/periods", reports.PeriodOptions)

	// Empresa de trabajo de la sesión (master/admin)
	session := protected.Group("/session", RequireRole(TopTier...))
	sessionHandler := NewSessionHandler(deps.Selection, deps.CompanyUC)
	session.Get("/company", sessionHandler.GetCompany)
	session.Put("/company", sessionHandler.SelectCompany)
	session.Delete("/company", sessionHandler.ClearCompany)

	// Agentes: la visibilidad y los permisos por rango los decide el caso de uso
	agents := protected.Group("/agents")
	agentHandler := NewAgentHandler(deps.AgentUC, scope)
	agents.Get("/", agentHandler.List)
	agents.Post("/", RequireRole(Managers...), agentHandler.Create)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", RequireRole(Managers...), agentHandler.Deactivate)

	// Empresas y facturas (master/admin)
	companies := protected.Group("/companies", RequireRole(TopTier...))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	invoices := protected.Group("/invoices", RequireRole(TopTier...))
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, scope)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Reservas (feature gestión)
	management := RequireFeature(entity.FeatureManagement, deps.Features)
	bookings := protected.Group("/bookings", management)
	bookingHandler := NewBookingHandler(deps.BookingUC, scope, deps.MaxUploadBytes)
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", bookingHandler.Delete)
	bookings.Get("/:id/attachment", bookingHandler.Attachment)

	// Proveedores, contratos y catálogos (feature productos)
	products := RequireFeature(entity.FeatureProducts, deps.Features)
	managers := RequireRole(Managers...)

	suppliers := protected.Group("/suppliers", products)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, scope)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", managers, supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", managers, supplierHandler.Update)
	suppliers.Post("/:id/deactivate", managers, supplierHandler.Deactivate)
	suppliers.Post("/:id/reactivate", managers, supplierHandler.Reactivate)
	suppliers.Delete("/:id", managers, supplierHandler.Purge)

	contractHandler := NewContractHandler(deps.ContractUC, scope, deps.MaxUploadBytes)
	contracts := protected.Group("/contracts", products)
	contracts.Get("/", contractHandler.ListContracts)
	contracts.Post("/", managers, contractHandler.SaveContract)
	contracts.Get("/:id", contractHandler.GetContract)
	contracts.Put("/:id", managers, contractHandler.SaveContract)
	contracts.Get("/:id/attachment", contractHandler.ContractAttachment)
	contracts.Post("/:id/deactivate", managers, contractHandler.DeactivateContract)
	contracts.Post("/:id/reactivate", managers, contractHandler.ReactivateContract)
	contracts.Delete("/:id", managers, contractHandler.PurgeContract)

	catalogs := protected.Group("/catalogs", products)
	catalogs.Get("/", contractHandler.ListCatalogs)
	catalogs.Post("/", managers, contractHandler.SaveCatalog)
	catalogs.Get("/:id", contractHandler.GetCatalog)
	catalogs.Put("/:id", managers, contractHandler.SaveCatalog)
	catalogs.Get("/:id/attachment", contractHandler.CatalogAttachment)
	catalogs.Post("/:id/deactivate", managers, contractHandler.DeactivateCatalog)
	catalogs.Post("/:id/reactivate", managers, contractHandler.ReactivateCatalog)
	catalogs.Delete("/:id", managers, contractHandler.PurgeCatalog)

	// Reportes: el alcance por rol lo fija el caso de uso
	rep := protected.Group("/reports", management)
	rep.Get("/sales-detail", reports.SalesDetail())
	rep.Get("/ranking", reports.Ranking())
	rep.Get("/sales-states", reports.SalesStates())
	rep.Get("/commissions", reports.CommissionPanel())
	rep.Get("/my-bookings", reports.MyBookings())
	rep.Get("/monthly", managers, reports.MonthlySummary())
	rep.Get("/balance", managers, reports.Balance())
	rep.Get("/settlements", managers, reports.Settlements())
	rep.Get("/by-company", managers, reports.ByCompany())
	rep.Get("/marketing", managers, reports.Marketing())

	// Exportaciones
	exports := NewExportHandler(deps.ExportUC, scope)
	exp := protected.Group("/exports")
	exp.Get("/bookings", management, exports.Bookings)
	exp.Get("/agents", managers, exports.Agents)
	exp.Get("/companies", RequireRole(TopTier...), exports.Companies)
	exp.Get("/invoices", RequireRole(TopTier...), exports.Invoices)
	exp.Get("/suppliers", products, exports.Suppliers())
	exp.Get("/contracts", products, exports.Contracts())
	exp.Get("/catalogs", products, exports.Catalogs())
	exp.Get("/commissions", management, exports.CommissionPanel())
	exp.Get("/sales-detail", management, exports.SalesDetail())
	exp.Get("/marketing", management, managers, exports.Marketing())
	exp.Get("/settlements/:key", management, managers, exports.SettlementPDF)
}
