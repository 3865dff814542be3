package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
)

// PaymentStatus estado de pago de la reserva. Vacío = sin definir.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Pagado"
	PaymentUnpaid PaymentStatus = "No Pagado"
)

// CollectionStatus estado de cobro. Vacío = sin definir.
type CollectionStatus string

const (
	CollectionCollected   CollectionStatus = "Cobrada"
	CollectionUncollected CollectionStatus = "No Cobrada"
)

// IssuanceStatus estado de emisión. Vacío = sin definir.
type IssuanceStatus string

const (
	IssuanceIssued   IssuanceStatus = "Emitida"
	IssuanceUnissued IssuanceStatus = "No Emitida"
)

// Booking es una reserva vendida por un agente.
// Los campos derivados (NetCost, GrossProfit, AgentCommission, AgencyMargin) son un caché
// del último cálculo y se recalculan con Recompute en cada alta o modificación.
type Booking struct {
	ID        string
	AgentID   string
	CompanyID string // vacío = sin empresa

	SaleDate       *time.Time
	TravelDate     *time.Time
	Product        string
	PaymentMode    string
	PassengerName  string
	PassengerPhone string
	PassengerEmail string
	Locators       string
	ExecutiveName  string
	ExecutiveEmail string
	Destination    string
	Comments       string

	SalePrice decimal.Decimal
	Costs     commission.NetCosts
	Bonus     decimal.Decimal

	PaymentStatus    PaymentStatus
	CollectionStatus CollectionStatus
	IssuanceStatus   IssuanceStatus

	Attachment Attachment

	NetCost         decimal.Decimal
	GrossProfit     decimal.Decimal
	AgentCommission decimal.Decimal
	AgencyMargin    decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recompute recalcula los campos derivados con la tasa del agente dueño.
func (b *Booking) Recompute(rate decimal.Decimal) commission.Result {
	r := commission.Calculate(b.Costs, b.SalePrice, rate)
	b.NetCost = r.NetCost
	b.GrossProfit = r.GrossProfit
	b.AgentCommission = r.AgentCommission
	b.AgencyMargin = r.AgencyMargin
	return r
}

// IsPaid, IsCollected, IsIssued: un estado sin definir cuenta como negativo.
func (b *Booking) IsPaid() bool      { return b.PaymentStatus == PaymentPaid }
func (b *Booking) IsCollected() bool { return b.CollectionStatus == CollectionCollected }
func (b *Booking) IsIssued() bool    { return b.IssuanceStatus == IssuanceIssued }
