// Package commission contiene el cálculo puro de comisiones de una reserva.
package commission

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// NetCosts son los ocho costos netos itemizados de una reserva.
type NetCosts struct {
	Hotel     decimal.Decimal `json:"hotel"`
	Flight    decimal.Decimal `json:"flight"`
	Transfer  decimal.Decimal `json:"transfer"`
	Insurance decimal.Decimal `json:"insurance"`
	Tour      decimal.Decimal `json:"tour"`
	Cruise    decimal.Decimal `json:"cruise"`
	Excursion decimal.Decimal `json:"excursion"`
	Package   decimal.Decimal `json:"package"`
}

// Sum devuelve el costo neto total.
func (c NetCosts) Sum() decimal.Decimal {
	return decimal.Sum(c.Hotel, c.Flight, c.Transfer, c.Insurance, c.Tour, c.Cruise, c.Excursion, c.Package)
}

// Add suma componente a componente.
func (c NetCosts) Add(o NetCosts) NetCosts {
	return NetCosts{
		Hotel:     c.Hotel.Add(o.Hotel),
		Flight:    c.Flight.Add(o.Flight),
		Transfer:  c.Transfer.Add(o.Transfer),
		Insurance: c.Insurance.Add(o.Insurance),
		Tour:      c.Tour.Add(o.Tour),
		Cruise:    c.Cruise.Add(o.Cruise),
		Excursion: c.Excursion.Add(o.Excursion),
		Package:   c.Package.Add(o.Package),
	}
}

// Result es el resultado del cálculo para una reserva.
type Result struct {
	AgentCommission decimal.Decimal
	AgencyMargin    decimal.Decimal
	GrossProfit     decimal.Decimal
	RateFraction    decimal.Decimal
	NetCost         decimal.Decimal
}

// Calculate aplica la regla de comisión:
//
//	net_cost         = Σ costos netos
//	gross_profit     = sale_price - net_cost
//	agent_commission = gross_profit * rate/100
//	agency_margin    = gross_profit - agent_commission
//
// rate es un porcentaje 0–100. Los valores negativos se propagan sin recorte.
func Calculate(costs NetCosts, salePrice, rate decimal.Decimal) Result {
	netCost := costs.Sum()
	gross := salePrice.Sub(netCost)
	fraction := rate.Div(hundred)
	agentCommission := gross.Mul(fraction)
	return Result{
		AgentCommission: agentCommission,
		AgencyMargin:    gross.Sub(agentCommission),
		GrossProfit:     gross,
		RateFraction:    fraction,
		NetCost:         netCost,
	}
}
