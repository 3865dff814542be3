package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate_MitadParaAgenteYAgencia(t *testing.T) {
	costs := commission.NetCosts{Hotel: d("300"), Flight: d("200"), Insurance: d("100")}

	r := commission.Calculate(costs, d("1000"), d("50"))

	assert.True(t, r.NetCost.Equal(d("600")))
	assert.True(t, r.GrossProfit.Equal(d("400")))
	assert.True(t, r.AgentCommission.Equal(d("200")))
	assert.True(t, r.AgencyMargin.Equal(d("200")))
	assert.True(t, r.RateFraction.Equal(d("0.5")))
}

func TestCalculate_PerdidaSePropagaSinRecorte(t *testing.T) {
	costs := commission.NetCosts{Package: d("700")}

	r := commission.Calculate(costs, d("500"), d("20"))

	assert.True(t, r.GrossProfit.Equal(d("-200")))
	assert.True(t, r.AgentCommission.Equal(d("-40")))
	assert.True(t, r.AgencyMargin.Equal(d("-160")))
}

func TestCalculate_ComisionMasMargenIgualGanancia(t *testing.T) {
	costs := commission.NetCosts{
		Hotel: d("123.45"), Flight: d("0.10"), Transfer: d("0.20"), Insurance: d("19.99"),
		Tour: d("7"), Cruise: d("0"), Excursion: d("3.33"), Package: d("0.01"),
	}
	for _, rate := range []string{"0", "1", "12.5", "33.33", "50", "66.67", "99.99", "100"} {
		r := commission.Calculate(costs, d("999.99"), d(rate))
		assert.True(t, r.AgentCommission.Add(r.AgencyMargin).Equal(r.GrossProfit), "rate %s", rate)

		fraction := d(rate).Div(d("100"))
		assert.True(t, r.AgentCommission.Equal(r.GrossProfit.Mul(fraction)), "rate %s", rate)
		assert.True(t, r.AgencyMargin.Equal(r.GrossProfit.Mul(decimal.NewFromInt(1).Sub(fraction))), "rate %s", rate)
	}
}

func TestCalculate_EsDeterminista(t *testing.T) {
	costs := commission.NetCosts{Tour: d("10.5")}
	a := commission.Calculate(costs, d("20"), d("10"))
	b := commission.Calculate(costs, d("20"), d("10"))
	assert.True(t, a.AgentCommission.Equal(b.AgentCommission))
	assert.True(t, a.AgencyMargin.Equal(b.AgencyMargin))
	assert.True(t, a.NetCost.Equal(b.NetCost))
}

func TestNetCosts_SumYAdd(t *testing.T) {
	a := commission.NetCosts{Hotel: d("1"), Package: d("2")}
	b := commission.NetCosts{Hotel: d("3"), Cruise: d("4")}

	sum := a.Add(b)
	assert.True(t, sum.Hotel.Equal(d("4")))
	assert.True(t, sum.Cruise.Equal(d("4")))
	assert.True(t, sum.Sum().Equal(d("10")))
}
