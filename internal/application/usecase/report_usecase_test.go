package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

var reportNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type reportFixture struct {
	uc       *usecase.ReportUseCase
	bookings *fakeBookings
	agents   *fakeAgents
	metrics  *fakeMetrics
}

func newReportFixture(agents ...*entity.Agent) reportFixture {
	f := reportFixture{bookings: newFakeBookings(), agents: newFakeAgents(agents...), metrics: newFakeMetrics()}
	companies := newFakeCompanies(&entity.Company{ID: "c1", Name: "Andes"})
	reports := &fakeReports{bookings: f.bookings, agents: f.agents}
	f.uc = usecase.NewReportUseCase(reports, companies, f.metrics, nil, func() time.Time { return reportNow })
	return f
}

func (f reportFixture) add(id, agentID, company string, day int, sale, hotel int64) *entity.Booking {
	d := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	b := &entity.Booking{
		ID: id, AgentID: agentID, CompanyID: company,
		SaleDate: &d, TravelDate: &d,
		SalePrice: decimal.NewFromInt(sale),
		Costs:     commission.NetCosts{Hotel: decimal.NewFromInt(hotel)},
	}
	f.bookings.byID[id] = b
	return b
}

func marzo() dto.ReportRequest { return dto.ReportRequest{Period: "2024-03"} }

func TestCommissionPanel_UsaTasaVigente(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	f := newReportFixture(ana)
	b := f.add("b1", "a1", "c1", 10, 1000, 600)
	b.AgentCommission = decimal.NewFromInt(999) // valor guardado obsoleto

	panel, err := f.uc.CommissionPanel(context.Background(), adminActor, marzo())
	require.NoError(t, err)
	require.Len(t, panel.Entries, 1)
	e := panel.Entries[0]
	assert.True(t, decimal.NewFromInt(200).Equal(e.AgentCommission))
	assert.True(t, decimal.NewFromInt(50).Equal(e.CommissionRate))
	assert.Equal(t, "ana", e.Executive)
	assert.Equal(t, 1, f.metrics.reports["commission_panel"])
}

func TestSalesDetail_AgrupaPorEjecutivo(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	f := newReportFixture(ana)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	f.add("b2", "a1", "c1", 2, 300, 200)

	r, err := f.uc.SalesDetail(context.Background(), masterActor, marzo())
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, 2, r.Rows[0].Count)
	assert.True(t, decimal.NewFromInt(500).Equal(r.Rows[0].GrossProfit))
	assert.True(t, r.Rows[0].GrossProfit.Equal(r.Totals.GrossProfit))
	assert.Equal(t, r.Rows[0].Count, r.Totals.Count)
	assert.Equal(t, "Marzo 2024", r.Period.Label)
}

func TestSalesDetail_EjecutivoSoloVeLoPropio(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	bea := agent("a2", "bea", entity.RoleEjecutivo, "c1", 10)
	f := newReportFixture(ana, bea)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	f.add("b2", "a2", "c1", 2, 300, 200)

	r, err := f.uc.SalesDetail(context.Background(), actorOf(bea), dto.ReportRequest{Period: "2024-03", CompanyID: "otra"})
	require.NoError(t, err)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "bea", r.Rows[0].Key)
}

func TestReportes_RolesOperativos(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	adm := agent("m1", "adm", entity.RoleAdmin, "c1", 0)
	f := newReportFixture(ana, adm)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	f.add("b2", "m1", "c1", 2, 300, 200)
	ctx := context.Background()

	detail, err := f.uc.SalesDetail(ctx, masterActor, marzo())
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Totals.Count, "las ventas de admin no cuentan por ejecutivo")

	summary, err := f.uc.MonthlySummary(ctx, masterActor, marzo())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Totals.Count)
	assert.Equal(t, 2, summary.Statuses.Unpaid, "estado sin definir cuenta como no pagado")
}

func TestByCompany_Etiquetas(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	f := newReportFixture(ana)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	f.add("b2", "a1", "", 2, 300, 200)
	f.add("b3", "a1", "c9", 3, 300, 200)

	r, err := f.uc.ByCompany(context.Background(), masterActor, marzo())
	require.NoError(t, err)
	labels := map[string]string{}
	for _, row := range r.Rows {
		labels[row.Key] = row.Label
	}
	assert.Equal(t, "Andes", labels["c1"])
	assert.Equal(t, "Sin empresa", labels[""])
	assert.Equal(t, "c9", labels["c9"])
	assert.Equal(t, 3, r.Totals.Count)
}

func TestMarketing_SinCorreosRepetidos(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	f := newReportFixture(ana)
	f.add("b1", "a1", "c1", 1, 1, 0).PassengerEmail = "pax@mail.test"
	f.add("b2", "a1", "c1", 2, 1, 0).PassengerEmail = "PAX@mail.test"
	f.add("b3", "a1", "c1", 3, 1, 0).PassengerName = "Sin correo"
	f.add("b4", "a1", "c1", 4, 1, 0)

	m, err := f.uc.Marketing(context.Background(), masterActor, marzo())
	require.NoError(t, err)
	assert.Len(t, m.Contacts, 2)
}

func TestSettlementDocument(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	ana.Salary = decimal.NewFromInt(100)
	f := newReportFixture(ana)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	ctx := context.Background()

	doc, err := f.uc.SettlementDocument(ctx, masterActor, marzo(), "ana")
	require.NoError(t, err)
	assert.Equal(t, "Andes", doc.CompanyName)
	assert.True(t, decimal.NewFromInt(200).Equal(doc.Settlement.Commission))
	assert.Len(t, doc.Entries, 1)

	_, err = f.uc.SettlementDocument(ctx, masterActor, marzo(), "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.SettlementDocument(ctx, masterActor, marzo(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBalance_AnioPorDefecto(t *testing.T) {
	f := newReportFixture()
	b, err := f.uc.Balance(context.Background(), masterActor, dto.ReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2024, b.Year)
	assert.Len(t, b.Rows, 12)
}

func TestBalance_EmpresaSoloRolesOperativos(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	adm := agent("m1", "adm", entity.RoleAdmin, "c1", 0)
	f := newReportFixture(ana, adm)
	f.add("b1", "a1", "c1", 1, 1000, 600)
	f.add("b2", "m1", "c1", 2, 300, 200)
	ctx := context.Background()

	scoped, err := f.uc.Balance(ctx, masterActor, dto.ReportRequest{Year: 2024, CompanyID: "c1"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(scoped.Rows[2].AgentIncome), scoped.Rows[2].AgentIncome.String())
	assert.True(t, decimal.NewFromInt(200).Equal(scoped.Total.CommissionExpense))

	all, err := f.uc.Balance(ctx, masterActor, dto.ReportRequest{Year: 2024})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(all.Rows[2].AgentIncome), all.Rows[2].AgentIncome.String())
}

func TestPeriodOptions(t *testing.T) {
	f := newReportFixture()
	opts := f.uc.PeriodOptions()
	require.Len(t, opts, 14)
	assert.Equal(t, "ultimos_30_dias", opts[0].Value)
	assert.Equal(t, "mes_actual", opts[1].Value)
	assert.Equal(t, dto.PeriodOptionDTO{Value: "2024-03", Label: "Marzo 2024"}, opts[2])
	assert.Equal(t, "2023-04", opts[13].Value)
}
