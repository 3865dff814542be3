package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/form"
)

// bookingManifest campos editables de una reserva. Los derivados (costo neto,
// ganancias, comisión) no figuran: se recalculan siempre.
var bookingManifest = form.Manifest[entity.Booking]{
	form.Date("sale_date", func(b *entity.Booking, v *time.Time) { b.SaleDate = v }),
	form.Date("travel_date", func(b *entity.Booking, v *time.Time) { b.TravelDate = v }),
	form.Text("product", func(b *entity.Booking, v string) { b.Product = v }),
	form.Text("payment_mode", func(b *entity.Booking, v string) { b.PaymentMode = v }),
	form.Text("passenger_name", func(b *entity.Booking, v string) { b.PassengerName = v }),
	form.Text("passenger_phone", func(b *entity.Booking, v string) { b.PassengerPhone = v }),
	form.Text("passenger_email", func(b *entity.Booking, v string) { b.PassengerEmail = v }),
	form.Text("locators", func(b *entity.Booking, v string) { b.Locators = v }),
	form.Text("executive_name", func(b *entity.Booking, v string) { b.ExecutiveName = v }),
	form.Text("executive_email", func(b *entity.Booking, v string) { b.ExecutiveEmail = v }),
	form.Text("destination", func(b *entity.Booking, v string) { b.Destination = v }),
	form.Text("comments", func(b *entity.Booking, v string) { b.Comments = v }),
	form.Money("sale_price", func(b *entity.Booking, v decimal.Decimal) { b.SalePrice = v }),
	form.Money("cost_hotel", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Hotel = v }),
	form.Money("cost_flight", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Flight = v }),
	form.Money("cost_transfer", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Transfer = v }),
	form.Money("cost_insurance", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Insurance = v }),
	form.Money("cost_tour", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Tour = v }),
	form.Money("cost_cruise", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Cruise = v }),
	form.Money("cost_excursion", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Excursion = v }),
	form.Money("cost_package", func(b *entity.Booking, v decimal.Decimal) { b.Costs.Package = v }),
	form.Money("bonus", func(b *entity.Booking, v decimal.Decimal) { b.Bonus = v }),
	form.Enum("payment_status",
		[]string{string(entity.PaymentPaid), string(entity.PaymentUnpaid)},
		func(b *entity.Booking, v string) { b.PaymentStatus = entity.PaymentStatus(v) }),
	form.Enum("collection_status",
		[]string{string(entity.CollectionCollected), string(entity.CollectionUncollected)},
		func(b *entity.Booking, v string) { b.CollectionStatus = entity.CollectionStatus(v) }),
	form.Enum("issuance_status",
		[]string{string(entity.IssuanceIssued), string(entity.IssuanceUnissued)},
		func(b *entity.Booking, v string) { b.IssuanceStatus = entity.IssuanceStatus(v) }),
}

// BookingFields nombres de los campos de formulario aceptados al guardar una reserva.
func BookingFields() []string { return bookingManifest.Names() }
