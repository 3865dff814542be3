package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/domain/commission"
)

// BookingListRequest filtros del listado de reservas.
type BookingListRequest struct {
	PageRequest
	Period    string `query:"periodo"` // ver report.ResolvePeriod; vacío = sin filtro de fecha
	Search    string `query:"q"`
	CompanyID string `query:"company_id"`
	AgentID   string `query:"agent_id"`
}

// BookingResponse salida de una reserva con sus campos derivados.
type BookingResponse struct {
	ID        string `json:"id"`
	AgentID   string `json:"agent_id"`
	CompanyID string `json:"company_id,omitempty"`

	SaleDate       *time.Time `json:"sale_date,omitempty"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	Product        string     `json:"product"`
	PaymentMode    string     `json:"payment_mode"`
	PassengerName  string     `json:"passenger_name"`
	PassengerPhone string     `json:"passenger_phone"`
	PassengerEmail string     `json:"passenger_email"`
	Locators       string     `json:"locators"`
	ExecutiveName  string     `json:"executive_name"`
	ExecutiveEmail string     `json:"executive_email"`
	Destination    string     `json:"destination"`
	Comments       string     `json:"comments"`

	SalePrice decimal.Decimal     `json:"sale_price"`
	Costs     commission.NetCosts `json:"net_costs"`
	Bonus     decimal.Decimal     `json:"bonus"`

	PaymentStatus    string `json:"payment_status"`
	CollectionStatus string `json:"collection_status"`
	IssuanceStatus   string `json:"issuance_status"`

	NetCost         decimal.Decimal `json:"net_cost"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	AgentCommission decimal.Decimal `json:"agent_commission"`
	AgencyMargin    decimal.Decimal `json:"agency_margin"`

	Attachment *AttachmentResponse `json:"attachment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AttachmentResponse metadatos del comprobante adjunto.
type AttachmentResponse struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SaveBookingResponse resultado de crear/editar. AttachmentWarning informa un adjunto
// rechazado: la reserva se guardó igualmente, sin el archivo.
type SaveBookingResponse struct {
	Booking           BookingResponse `json:"booking"`
	AttachmentWarning string          `json:"attachment_warning,omitempty"`
}

// BookingListResponse lista paginada de reservas.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// Upload archivo recibido por multipart.
type Upload struct {
	Filename string
	Size     int64
	Content  []byte
}
