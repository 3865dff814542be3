package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
)

func TestFilter_RolesEmpresaYFecha(t *testing.T) {
	exec := agent("e", entity.RoleEjecutivo, "10")
	exec.CompanyID = "c1"
	adm := agent("a", entity.RoleAdmin, "10")
	adm.CompanyID = "c1"
	other := agent("o", entity.RoleAnalista, "10")
	other.CompanyID = "c2"

	lines := []report.Line{
		line(exec, "", "100", "0", day(2024, 3, 10)),
		line(adm, "", "100", "0", day(2024, 3, 10)),   // rol excluido
		line(other, "", "100", "0", day(2024, 3, 10)), // otra empresa
		line(exec, "", "100", "0", day(2024, 4, 1)),   // fuera de rango
		line(exec, "", "100", "0", nil),               // sin fecha
	}
	f := report.Filter{
		Period:    report.MonthPeriod(2024, time.March, time.UTC),
		Roles:     policy.OperationalRoles(),
		CompanyID: "c1",
	}

	got := report.Select(lines, f)
	require.Len(t, got, 1)
	assert.Same(t, lines[0].Booking, got[0].Booking)
}

func TestFilter_PorFechaDeViaje(t *testing.T) {
	exec := agent("e", entity.RoleEjecutivo, "10")
	l := line(exec, "", "100", "0", day(2024, 1, 1))
	l.Booking.TravelDate = day(2024, 3, 5)
	f := report.Filter{Period: report.MonthPeriod(2024, time.March, time.UTC), ByTravelDate: true}
	assert.True(t, f.Match(l))
	f.ByTravelDate = false
	assert.False(t, f.Match(l))
}

func TestCountStatuses_SinDefinirCuentaComoNegativo(t *testing.T) {
	exec := agent("e", entity.RoleEjecutivo, "10")
	a := line(exec, "", "1", "0", day(2024, 1, 1))
	a.Booking.PaymentStatus = entity.PaymentPaid
	a.Booking.IssuanceStatus = entity.IssuanceIssued
	b := line(exec, "", "1", "0", day(2024, 1, 1))
	b.Booking.CollectionStatus = entity.CollectionCollected

	s := report.CountStatuses([]report.Line{a, b})
	assert.Equal(t, report.StatusSummary{Paid: 1, Unpaid: 1, Collected: 1, Uncollected: 1, Issued: 1, Unissued: 1}, s)
}

func TestMonthlyBalance_DoceMeses(t *testing.T) {
	exec := agent("e", entity.RoleEjecutivo, "25")
	lines := []report.Line{
		line(exec, "", "1000", "600", day(2024, 1, 5)), // ganancia 400: comisión 100, margen 300
		line(exec, "", "200", "100", day(2024, 1, 9)),  // ganancia 100: comisión 25, margen 75
		line(exec, "", "500", "0", day(2023, 1, 9)),    // otro año
	}
	rows, total := report.MonthlyBalance(lines, 2024)

	require.Len(t, rows, 12)
	assert.Equal(t, "Enero", rows[0].Label)
	assert.True(t, rows[0].AgentIncome.Equal(d("375")))
	assert.True(t, rows[0].CommissionExpense.Equal(d("125")))
	assert.True(t, rows[0].Net().Equal(d("250")))
	assert.True(t, rows[5].AgentIncome.IsZero())
	assert.True(t, total.Income().Equal(d("375")))
}

func TestSettlements_SueldoBonosYPago(t *testing.T) {
	ana := agent("ana", entity.RoleEjecutivo, "50")
	ana.FirstName, ana.LastName = "Ana", "Pérez"
	a := line(ana, "", "1000", "600", day(2024, 1, 5)) // comisión 200
	a.Booking.Bonus = d("30")
	b := line(ana, "", "300", "100", day(2024, 1, 6)) // comisión 100
	b.Booking.PaymentStatus = entity.PaymentPaid

	got := report.Settlements([]report.Line{a, b})
	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "Ana Pérez", s.FullName)
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Commission.Equal(d("300")))
	assert.True(t, s.TotalToPay().Equal(d("1330")), "300 comisión + 30 bonos + 1000 sueldo")
	assert.True(t, s.Paid)
}
