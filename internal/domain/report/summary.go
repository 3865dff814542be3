package report

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// Filter parámetros de selección de reservas para un reporte.
type Filter struct {
	Period        Period
	Roles         []entity.Role // vacío = cualquier rol
	CompanyID     string        // vacío = todas
	AgentID       string        // vacío = todos
	ByTravelDate  bool          // filtra por fecha de viaje en lugar de fecha de venta
	ExecutiveName string        // vacío = todos; compara contra AgentKey
}

// Match informa si la línea cumple el filtro.
func (f Filter) Match(l Line) bool {
	if l.Booking == nil {
		return false
	}
	date := l.Booking.SaleDate
	if f.ByTravelDate {
		date = l.Booking.TravelDate
	}
	if date == nil || !f.Period.Contains(*date) {
		return false
	}
	if len(f.Roles) > 0 && (l.Agent == nil || !slices.Contains(f.Roles, l.Agent.Role)) {
		return false
	}
	if f.CompanyID != "" && l.Booking.CompanyID != f.CompanyID {
		return false
	}
	if f.AgentID != "" && l.Booking.AgentID != f.AgentID {
		return false
	}
	if f.ExecutiveName != "" && AgentKey(l) != f.ExecutiveName {
		return false
	}
	return true
}

// Select devuelve las líneas que cumplen el filtro, en el mismo orden.
func Select(lines []Line, f Filter) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if f.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// StatusSummary conteos de estados; un estado sin definir cuenta como negativo.
type StatusSummary struct {
	Paid        int
	Unpaid      int
	Collected   int
	Uncollected int
	Issued      int
	Unissued    int
}

// CountStatuses cuenta estados de pago, cobro y emisión.
func CountStatuses(lines []Line) StatusSummary {
	var s StatusSummary
	for _, l := range lines {
		if l.Booking.IsPaid() {
			s.Paid++
		} else {
			s.Unpaid++
		}
		if l.Booking.IsCollected() {
			s.Collected++
		} else {
			s.Uncollected++
		}
		if l.Booking.IsIssued() {
			s.Issued++
		} else {
			s.Unissued++
		}
	}
	return s
}

// BalanceRow balance de un mes. Solo los ingresos por agentes y los egresos por
// comisión provienen de reservas; los demás conceptos no tienen origen de datos y valen cero.
type BalanceRow struct {
	Month             time.Month
	Label             string
	AgentIncome       decimal.Decimal
	ExternalIncome    decimal.Decimal
	CommissionExpense decimal.Decimal
	AdminExpense      decimal.Decimal
	OtherExpense      decimal.Decimal
}

// Income ingresos totales.
func (r BalanceRow) Income() decimal.Decimal { return r.AgentIncome.Add(r.ExternalIncome) }

// Expense egresos totales.
func (r BalanceRow) Expense() decimal.Decimal {
	return decimal.Sum(r.CommissionExpense, r.AdminExpense, r.OtherExpense)
}

// Net ingresos menos egresos.
func (r BalanceRow) Net() decimal.Decimal { return r.Income().Sub(r.Expense()) }

// MonthlyBalance doce filas (enero a diciembre) del año indicado más la fila de totales.
func MonthlyBalance(lines []Line, year int) ([]BalanceRow, BalanceRow) {
	rows := make([]BalanceRow, 12)
	for i := range rows {
		rows[i] = BalanceRow{Month: time.Month(i + 1), Label: MonthName(time.Month(i + 1))}
	}
	for _, l := range lines {
		d := l.Booking.SaleDate
		if d == nil || d.Year() != year {
			continue
		}
		r := l.Compute()
		row := &rows[d.Month()-1]
		row.AgentIncome = row.AgentIncome.Add(r.AgencyMargin)
		row.CommissionExpense = row.CommissionExpense.Add(r.AgentCommission)
	}
	total := BalanceRow{Label: "Total"}
	for _, r := range rows {
		total.AgentIncome = total.AgentIncome.Add(r.AgentIncome)
		total.ExternalIncome = total.ExternalIncome.Add(r.ExternalIncome)
		total.CommissionExpense = total.CommissionExpense.Add(r.CommissionExpense)
		total.AdminExpense = total.AdminExpense.Add(r.AdminExpense)
		total.OtherExpense = total.OtherExpense.Add(r.OtherExpense)
	}
	return rows, total
}

// Settlement liquidación de un agente en el período.
type Settlement struct {
	Key        string
	AgentID    string
	FullName   string
	Count      int
	Commission decimal.Decimal
	Bonus      decimal.Decimal
	Salary     decimal.Decimal
	Discounts  decimal.Decimal
	Paid       bool // alguna reserva del período está pagada
}

// TotalToPay comisión + bonos + sueldo - descuentos.
func (s Settlement) TotalToPay() decimal.Decimal {
	return decimal.Sum(s.Commission, s.Bonus, s.Salary).Sub(s.Discounts)
}

// Settlements agrupa por AgentKey. El sueldo se toma del agente dueño de la primera
// reserva de cada grupo.
func Settlements(lines []Line) []Settlement {
	index := make(map[string]int)
	var out []Settlement
	for _, l := range lines {
		k := AgentKey(l)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			s := Settlement{Key: k, FullName: k}
			if l.Agent != nil {
				s.AgentID = l.Agent.ID
				s.FullName = l.Agent.FullName()
				s.Salary = l.Agent.Salary
			}
			out = append(out, s)
		}
		s := &out[i]
		s.Count++
		s.Commission = s.Commission.Add(l.Compute().AgentCommission)
		s.Bonus = s.Bonus.Add(l.Booking.Bonus)
		s.Paid = s.Paid || l.Booking.IsPaid()
	}
	return out
}
