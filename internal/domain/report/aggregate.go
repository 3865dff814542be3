// Package report agrupa reservas y acumula sus valores de comisión.
//
// Cada reporte recalcula la comisión de cada reserva con la tasa vigente del agente
// dueño; los campos derivados persistidos en la reserva no se leen aquí. Toda la
// acumulación es decimal exacta.
package report

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// Line una reserva junto a su agente dueño, tal como llega del almacenamiento.
type Line struct {
	Booking *entity.Booking
	Agent   *entity.Agent
}

// Compute recalcula la comisión con la tasa actual del agente.
func (l Line) Compute() commission.Result {
	rate := decimal.Zero
	if l.Agent != nil {
		rate = l.Agent.CommissionRate
	}
	return commission.Calculate(l.Booking.Costs, l.Booking.SalePrice, rate)
}

// Totals sumas de un grupo de reservas.
type Totals struct {
	Count           int
	SalePrice       decimal.Decimal
	Costs           commission.NetCosts
	NetCost         decimal.Decimal
	Bonus           decimal.Decimal
	GrossProfit     decimal.Decimal
	AgentCommission decimal.Decimal
	AgencyMargin    decimal.Decimal // ganancia neta de la agencia
}

func (t *Totals) add(b *entity.Booking, r commission.Result) {
	t.Count++
	t.SalePrice = t.SalePrice.Add(b.SalePrice)
	t.Costs = t.Costs.Add(b.Costs)
	t.NetCost = t.NetCost.Add(r.NetCost)
	t.Bonus = t.Bonus.Add(b.Bonus)
	t.GrossProfit = t.GrossProfit.Add(r.GrossProfit)
	t.AgentCommission = t.AgentCommission.Add(r.AgentCommission)
	t.AgencyMargin = t.AgencyMargin.Add(r.AgencyMargin)
}

// Merge suma o a t columna por columna.
func (t *Totals) Merge(o Totals) {
	t.Count += o.Count
	t.SalePrice = t.SalePrice.Add(o.SalePrice)
	t.Costs = t.Costs.Add(o.Costs)
	t.NetCost = t.NetCost.Add(o.NetCost)
	t.Bonus = t.Bonus.Add(o.Bonus)
	t.GrossProfit = t.GrossProfit.Add(o.GrossProfit)
	t.AgentCommission = t.AgentCommission.Add(o.AgentCommission)
	t.AgencyMargin = t.AgencyMargin.Add(o.AgencyMargin)
}

// AverageSale venta promedio; cero si no hay reservas.
func (t Totals) AverageSale() decimal.Decimal {
	if t.Count == 0 {
		return decimal.Zero
	}
	return t.SalePrice.Div(decimal.NewFromInt(int64(t.Count)))
}

// Row una fila del reporte.
type Row struct {
	Key string
	Totals
}

// Report filas por clave más la fila de totales.
type Report struct {
	Rows  []Row
	Total Totals
}

// KeyFunc clave de agrupación de una línea.
type KeyFunc func(Line) string

// AgentKey clave canónica de agente: nombre de ejecutivo de la reserva o, si está
// vacío, el username del agente dueño.
func AgentKey(l Line) string {
	if name := strings.TrimSpace(l.Booking.ExecutiveName); name != "" {
		return name
	}
	if l.Agent != nil {
		return l.Agent.Username
	}
	return l.Booking.AgentID
}

// MonthKey "YYYY-MM" de la fecha de venta.
func MonthKey(l Line) string {
	if l.Booking.SaleDate == nil {
		return ""
	}
	return l.Booking.SaleDate.Format("2006-01")
}

// DayKey "YYYY-MM-DD" de la fecha de venta.
func DayKey(l Line) string {
	if l.Booking.SaleDate == nil {
		return ""
	}
	return l.Booking.SaleDate.Format("2006-01-02")
}

// CompanyKey ID de la empresa de la reserva.
func CompanyKey(l Line) string { return l.Booking.CompanyID }

// Aggregate agrupa las líneas por key. Las filas salen en orden de primera aparición
// y Total es la suma de todas las filas.
func Aggregate(lines []Line, key KeyFunc) Report {
	index := make(map[string]int)
	var rows []Row
	for _, l := range lines {
		k := key(l)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, Row{Key: k})
		}
		rows[i].add(l.Booking, l.Compute())
	}
	var total Totals
	for _, r := range rows {
		total.Merge(r.Totals)
	}
	return Report{Rows: rows, Total: total}
}

// Rank ordena las filas por ganancia neta descendente; los empates conservan el orden de aparición.
func Rank(r Report) Report {
	rows := slices.Clone(r.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AgencyMargin.GreaterThan(rows[j].AgencyMargin)
	})
	return Report{Rows: rows, Total: r.Total}
}

// Entry una reserva con su comisión recalculada.
type Entry struct {
	Line
	Result commission.Result
}

// Detail una entrada por reserva (panel de comisiones) más los totales.
func Detail(lines []Line) ([]Entry, Totals) {
	entries := make([]Entry, 0, len(lines))
	var total Totals
	for _, l := range lines {
		r := l.Compute()
		total.add(l.Booking, r)
		entries = append(entries, Entry{Line: l, Result: r})
	}
	return entries, total
}
