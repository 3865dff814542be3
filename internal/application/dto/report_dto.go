package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportRequest parámetros comunes de los reportes.
type ReportRequest struct {
	Period    string `query:"periodo"`    // "ultimos_30_dias", "YYYY-MM", "Marzo 2024"...
	CompanyID string `query:"company_id"` // solo master/admin; el resto queda en su empresa
	Executive string `query:"ejecutivo"`  // filtra por clave de ejecutivo
	Year      int    `query:"anio"`       // balance mensual; por defecto el año actual
}

// ── Bloques comunes ───────────────────────────────────────────────────────────

// PeriodDTO período resuelto del reporte.
type PeriodDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// TotalsDTO sumas de un grupo de reservas.
type TotalsDTO struct {
	Count           int                 `json:"count"`
	SalePrice       decimal.Decimal     `json:"sale_price"`
	Costs           commission.NetCosts `json:"net_costs"`
	NetCost         decimal.Decimal     `json:"net_cost"`
	Bonus           decimal.Decimal     `json:"bonus"`
	GrossProfit     decimal.Decimal     `json:"gross_profit"`
	AgentCommission decimal.Decimal     `json:"agent_commission"`
	AgencyMargin    decimal.Decimal     `json:"agency_margin"` // ganancia neta
	AverageSale     decimal.Decimal     `json:"average_sale"`
}

// ReportRowDTO una fila agrupada.
type ReportRowDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	TotalsDTO
}

// ReportDTO filas agrupadas más totales.
type ReportDTO struct {
	Title  string         `json:"title"`
	Period PeriodDTO      `json:"period"`
	Rows   []ReportRowDTO `json:"rows"`
	Totals TotalsDTO      `json:"totals"`
}

// ── Panel de comisiones ───────────────────────────────────────────────────────

// CommissionEntryDTO una reserva con su comisión recalculada.
type CommissionEntryDTO struct {
	BookingID       string          `json:"booking_id"`
	SaleDate        *time.Time      `json:"sale_date,omitempty"`
	Executive       string          `json:"executive"`
	PassengerName   string          `json:"passenger_name"`
	Destination     string          `json:"destination"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	NetCost         decimal.Decimal `json:"net_cost"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	CommissionRate  decimal.Decimal `json:"commission_rate"` // porcentaje 0–100
	AgentCommission decimal.Decimal `json:"agent_commission"`
	AgencyMargin    decimal.Decimal `json:"agency_margin"`
	Bonus           decimal.Decimal `json:"bonus"`
	PaymentStatus   string          `json:"payment_status"`
}

// CommissionPanelDTO panel de comisiones del período.
type CommissionPanelDTO struct {
	Period  PeriodDTO            `json:"period"`
	Entries []CommissionEntryDTO `json:"entries"`
	Totals  TotalsDTO            `json:"totals"`
}

// ── Reporte general mensual ───────────────────────────────────────────────────

// StatusCountsDTO conteos de estado de las reservas.
type StatusCountsDTO struct {
	Paid        int `json:"paid"`
	Unpaid      int `json:"unpaid"`
	Collected   int `json:"collected"`
	Uncollected int `json:"uncollected"`
	Issued      int `json:"issued"`
	Unissued    int `json:"unissued"`
}

// MonthlySummaryDTO totales generales, estados y desglose por ejecutivo.
type MonthlySummaryDTO struct {
	Period      PeriodDTO       `json:"period"`
	Totals      TotalsDTO       `json:"totals"`
	Statuses    StatusCountsDTO `json:"statuses"`
	ByExecutive []ReportRowDTO  `json:"by_executive"`
}

// ── Balance mensual ───────────────────────────────────────────────────────────

// BalanceRowDTO balance de un mes.
type BalanceRowDTO struct {
	Month             int             `json:"month"`
	Label             string          `json:"label"`
	AgentIncome       decimal.Decimal `json:"agent_income"`
	ExternalIncome    decimal.Decimal `json:"external_income"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	CommissionExpense decimal.Decimal `json:"commission_expense"`
	AdminExpense      decimal.Decimal `json:"admin_expense"`
	OtherExpense      decimal.Decimal `json:"other_expense"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Net               decimal.Decimal `json:"net"`
}

// BalanceDTO balance anual mes a mes.
type BalanceDTO struct {
	Year  int             `json:"year"`
	Rows  []BalanceRowDTO `json:"rows"`
	Total BalanceRowDTO   `json:"total"`
}

// ── Liquidaciones ─────────────────────────────────────────────────────────────

// SettlementDTO liquidación de un agente.
type SettlementDTO struct {
	Key        string          `json:"key"`
	AgentID    string          `json:"agent_id,omitempty"`
	FullName   string          `json:"full_name"`
	Count      int             `json:"count"`
	Commission decimal.Decimal `json:"commission"`
	Bonus      decimal.Decimal `json:"bonus"`
	Salary     decimal.Decimal `json:"salary"`
	Discounts  decimal.Decimal `json:"discounts"`
	TotalToPay decimal.Decimal `json:"total_to_pay"`
	Status     string          `json:"status"` // "Pagado" | "No Pagado"
}

// SettlementsDTO liquidaciones del período.
type SettlementsDTO struct {
	Period PeriodDTO       `json:"period"`
	Items  []SettlementDTO `json:"items"`
}

// SettlementDocument datos para renderizar la liquidación en PDF.
type SettlementDocument struct {
	CompanyName string
	Period      PeriodDTO
	Settlement  SettlementDTO
	Entries     []CommissionEntryDTO
	GeneratedAt time.Time
}

// ── Marketing ─────────────────────────────────────────────────────────────────

// MarketingContactDTO contacto de pasajero para campañas.
type MarketingContactDTO struct {
	PassengerName  string     `json:"passenger_name"`
	PassengerEmail string     `json:"passenger_email"`
	PassengerPhone string     `json:"passenger_phone"`
	Destination    string     `json:"destination"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	Executive      string     `json:"executive"`
}

// MarketingDTO lista de contactos del período.
type MarketingDTO struct {
	Period   PeriodDTO             `json:"period"`
	Contacts []MarketingContactDTO `json:"contacts"`
}

// ── Opciones de período ───────────────────────────────────────────────────────

// PeriodOptionDTO opción para selectores de mes.
type PeriodOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
