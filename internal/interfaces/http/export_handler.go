package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

// ExportHandler descargas XLSX de listados y reportes, y la liquidación en PDF.
// Los filtros son los mismos del listado o reporte equivalente, sin paginar.
type ExportHandler struct {
	uc    *usecase.ExportUseCase
	scope sessionScope
	now   func() time.Time
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase, scope sessionScope) *ExportHandler {
	return &ExportHandler{uc: uc, scope: scope, now: time.Now}
}

// filename "{base}_{YYYYmmdd}.xlsx".
func (h *ExportHandler) filename(base, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, h.now().Format("20060102"), ext)
}

func (h *ExportHandler) respond(c *fiber.Ctx, base string, content []byte, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return sendXLSX(c, h.filename(base, "xlsx"), content)
}

// Bookings godoc
// @Summary      Exportar reservas
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/exports/bookings [get]
func (h *ExportHandler) Bookings(c *fiber.Ctx) error {
	var in dto.BookingListRequest
	if ok, err := queryAndValidate(c, &in); !ok {
		return err
	}
	in.CompanyID = h.scope.company(c, in.CompanyID)
	out, err := h.uc.Bookings(c.UserContext(), GetActor(c), in)
	return h.respond(c, "reservas", out, err)
}

// Agents godoc
// @Summary      Exportar agentes
// @Tags         exports
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/exports/agents [get]
func (h *ExportHandler) Agents(c *fiber.Ctx) error {
	out, err := h.uc.Agents(c.UserContext(), GetActor(c), h.scope.company(c, c.Query("company_id")))
	return h.respond(c, "agentes", out, err)
}

// Companies godoc
// @Summary      Exportar empresas
// @Tags         exports
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/exports/companies [get]
func (h *ExportHandler) Companies(c *fiber.Ctx) error {
	out, err := h.uc.Companies(c.UserContext(), GetActor(c))
	return h.respond(c, "empresas", out, err)
}

type lifecycleExport func(context.Context, policy.Actor, dto.LifecycleListRequest) ([]byte, error)

func (h *ExportHandler) lifecycle(base string, fn lifecycleExport) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, ok, err := lifecycleRequest(c, h.scope)
		if !ok {
			return err
		}
		out, err := fn(c.UserContext(), GetActor(c), in)
		return h.respond(c, base, out, err)
	}
}

// Suppliers exporta proveedores.
func (h *ExportHandler) Suppliers() fiber.Handler { return h.lifecycle("proveedores", h.uc.Suppliers) }

// Contracts exporta contratos.
func (h *ExportHandler) Contracts() fiber.Handler { return h.lifecycle("contratos", h.uc.Contracts) }

// Catalogs exporta catálogos.
func (h *ExportHandler) Catalogs() fiber.Handler { return h.lifecycle("catalogos", h.uc.Catalogs) }

// Invoices godoc
// @Summary      Exportar facturas
// @Tags         exports
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/exports/invoices [get]
func (h *ExportHandler) Invoices(c *fiber.Ctx) error {
	var in dto.InvoiceListRequest
	if ok, err := queryAndValidate(c, &in); !ok {
		return err
	}
	in.CompanyID = h.scope.company(c, in.CompanyID)
	out, err := h.uc.Invoices(c.UserContext(), GetActor(c), in)
	return h.respond(c, "facturas", out, err)
}

type reportExport func(context.Context, policy.Actor, dto.ReportRequest) ([]byte, error)

func (h *ExportHandler) report(base string, fn reportExport) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, ok, err := reportRequest(c, h.scope)
		if !ok {
			return err
		}
		out, err := fn(c.UserContext(), GetActor(c), req)
		return h.respond(c, base, out, err)
	}
}

// CommissionPanel exporta el panel de comisiones.
func (h *ExportHandler) CommissionPanel() fiber.Handler {
	return h.report("panel_comisiones", h.uc.CommissionPanel)
}

// SalesDetail exporta el detalle de ventas.
func (h *ExportHandler) SalesDetail() fiber.Handler { return h.report("detalle_ventas", h.uc.SalesDetail) }

// Marketing exporta la lista de contactos.
func (h *ExportHandler) Marketing() fiber.Handler { return h.report("marketing", h.uc.Marketing) }

// SettlementPDF godoc
// @Summary      Liquidación de un ejecutivo en PDF
// @Tags         exports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        key      path   string  true   "Clave del ejecutivo (nombre o usuario)"
// @Param        periodo  query  string  false  "Período"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exports/settlements/{key} [get]
func (h *ExportHandler) SettlementPDF(c *fiber.Ctx) error {
	req, ok, err := reportRequest(c, h.scope)
	if !ok {
		return err
	}
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return badRequest(c, "INVALID_KEY", "clave de ejecutivo inválida")
	}
	out, err := h.uc.SettlementPDF(c.UserContext(), GetActor(c), req, key)
	if err != nil {
		return writeError(c, err)
	}
	name := h.filename("liquidacion_"+entity.SafeFilename(strings.TrimSpace(key)), "pdf")
	return sendAttachment(c, name, out)
}
