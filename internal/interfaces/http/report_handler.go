package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

// ReportHandler reportes de ventas, comisiones, balance y marketing.
//
// Todos aceptan ?periodo= (ultimos_30_dias, mes_actual, YYYY-MM o "Marzo 2024"),
// ?company_id= (solo master/admin; por defecto la empresa seleccionada en sesión)
// y ?ejecutivo=. Un período no reconocido equivale a los últimos 30 días.
type ReportHandler struct {
	uc    *usecase.ReportUseCase
	scope sessionScope
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, scope sessionScope) *ReportHandler {
	return &ReportHandler{uc: uc, scope: scope}
}

func reportRequest(c *fiber.Ctx, scope sessionScope) (dto.ReportRequest, bool, error) {
	var req dto.ReportRequest
	if ok, err := queryAndValidate(c, &req); !ok {
		return req, false, err
	}
	req.CompanyID = scope.company(c, req.CompanyID)
	return req, true, nil
}

// run resuelve la petición y responde el reporte como JSON.
func run[T any](h *ReportHandler, fn func(context.Context, policy.Actor, dto.ReportRequest) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, ok, err := reportRequest(c, h.scope)
		if !ok {
			return err
		}
		out, err := fn(c.UserContext(), GetActor(c), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

// SalesDetail godoc
// @Summary      Detalle de ventas por ejecutivo
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        periodo  query  string  false  "Período"
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/sales-detail [get]
func (h *ReportHandler) SalesDetail() fiber.Handler { return run(h, h.uc.SalesDetail) }

// Ranking godoc
// @Summary      Ranking de ejecutivos por ganancia bruta
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/ranking [get]
func (h *ReportHandler) Ranking() fiber.Handler { return run(h, h.uc.Ranking) }

// SalesStates godoc
// @Summary      Estados de venta (venta promedio por ejecutivo)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/sales-states [get]
func (h *ReportHandler) SalesStates() fiber.Handler { return run(h, h.uc.SalesStates) }

// CommissionPanel godoc
// @Summary      Panel de comisiones por reserva
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CommissionPanelDTO
// @Router       /api/reports/commissions [get]
func (h *ReportHandler) CommissionPanel() fiber.Handler { return run(h, h.uc.CommissionPanel) }

// MyBookings godoc
// @Summary      Mis reservas del período con totales
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CommissionPanelDTO
// @Router       /api/reports/my-bookings [get]
func (h *ReportHandler) MyBookings() fiber.Handler { return run(h, h.uc.MyBookings) }

// MonthlySummary godoc
// @Summary      Reporte general mensual
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MonthlySummaryDTO
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) MonthlySummary() fiber.Handler { return run(h, h.uc.MonthlySummary) }

// Balance godoc
// @Summary      Balance mensual del año
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        anio  query  int  false  "Año; por defecto el actual"
// @Success      200  {object}  dto.BalanceDTO
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance() fiber.Handler { return run(h, h.uc.Balance) }

// Settlements godoc
// @Summary      Liquidaciones por agente
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SettlementsDTO
// @Router       /api/reports/settlements [get]
func (h *ReportHandler) Settlements() fiber.Handler { return run(h, h.uc.Settlements) }

// ByCompany godoc
// @Summary      Resumen por empresa
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports/by-company [get]
func (h *ReportHandler) ByCompany() fiber.Handler { return run(h, h.uc.ByCompany) }

// Marketing godoc
// @Summary      Contactos de pasajeros sin correos repetidos
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MarketingDTO
// @Router       /api/reports/marketing [get]
func (h *ReportHandler) Marketing() fiber.Handler { return run(h, h.uc.Marketing) }

// PeriodOptions godoc
// @Summary      Períodos seleccionables (últimos 12 meses)
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.PeriodOptionDTO
// @Router       /api/reports/periods [get]
func (h *ReportHandler) PeriodOptions(c *fiber.Ctx) error {
	return c.JSON(h.uc.PeriodOptions())
}
