package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// bookingColumns no incluye el contenido del adjunto; solo GetAttachment lo lee.
const bookingColumns = `id, agent_id, company_id, sale_date, travel_date, product, payment_mode,
	passenger_name, passenger_phone, passenger_email, locators, executive_name, executive_email,
	destination, comments, sale_price, cost_hotel, cost_flight, cost_transfer, cost_insurance,
	cost_tour, cost_cruise, cost_excursion, cost_package, bonus, payment_status, collection_status,
	issuance_status, attachment_name, attachment_size, net_cost, gross_profit, agent_commission,
	agency_margin, created_at, updated_at`

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	db Querier
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
func NewBookingRepository(db Querier) *BookingRepo {
	return &BookingRepo{db: db}
}

func bookingArgs(b *entity.Booking) []any {
	c := b.Costs
	return []any{
		b.ID, b.AgentID, nullable(b.CompanyID), b.SaleDate, b.TravelDate, b.Product, b.PaymentMode,
		b.PassengerName, b.PassengerPhone, b.PassengerEmail, b.Locators, b.ExecutiveName, b.ExecutiveEmail,
		b.Destination, b.Comments, b.SalePrice, c.Hotel, c.Flight, c.Transfer, c.Insurance,
		c.Tour, c.Cruise, c.Excursion, c.Package, b.Bonus, string(b.PaymentStatus), string(b.CollectionStatus),
		string(b.IssuanceStatus), b.Attachment.Name, b.Attachment.Size, b.NetCost, b.GrossProfit, b.AgentCommission,
		b.AgencyMargin, b.CreatedAt, b.UpdatedAt,
	}
}

// Create persiste una nueva reserva con su adjunto si lo hay.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	args := append(bookingArgs(b), b.Attachment.Content)
	query := `INSERT INTO bookings (` + bookingColumns + `, attachment) VALUES (` + placeholders(len(args)) + `)`
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return writeErr("insert booking", err)
	}
	return nil
}

// Update reescribe la reserva. El adjunto solo se reemplaza cuando b trae contenido nuevo.
func (r *BookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	c := b.Costs
	query := `
		UPDATE bookings SET agent_id = $2, company_id = $3, sale_date = $4, travel_date = $5, product = $6,
			payment_mode = $7, passenger_name = $8, passenger_phone = $9, passenger_email = $10,
			locators = $11, executive_name = $12, executive_email = $13, destination = $14, comments = $15,
			sale_price = $16, cost_hotel = $17, cost_flight = $18, cost_transfer = $19, cost_insurance = $20,
			cost_tour = $21, cost_cruise = $22, cost_excursion = $23, cost_package = $24, bonus = $25,
			payment_status = $26, collection_status = $27, issuance_status = $28,
			net_cost = $29, gross_profit = $30, agent_commission = $31, agency_margin = $32, updated_at = $33`
	args := []any{
		b.ID, b.AgentID, nullable(b.CompanyID), b.SaleDate, b.TravelDate, b.Product,
		b.PaymentMode, b.PassengerName, b.PassengerPhone, b.PassengerEmail,
		b.Locators, b.ExecutiveName, b.ExecutiveEmail, b.Destination, b.Comments,
		b.SalePrice, c.Hotel, c.Flight, c.Transfer, c.Insurance,
		c.Tour, c.Cruise, c.Excursion, c.Package, b.Bonus,
		string(b.PaymentStatus), string(b.CollectionStatus), string(b.IssuanceStatus),
		b.NetCost, b.GrossProfit, b.AgentCommission, b.AgencyMargin, b.UpdatedAt,
	}
	if b.Attachment.Content != nil {
		query += `, attachment_name = $34, attachment_size = $35, attachment = $36`
		args = append(args, b.Attachment.Name, b.Attachment.Size, b.Attachment.Content)
	}
	tag, err := r.db.Exec(ctx, query+` WHERE id = $1`, args...)
	if err != nil {
		return writeErr("update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene la reserva sin el contenido del adjunto.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	if !validID(id) {
		return nil, nil
	}
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// GetAttachment devuelve nombre, tamaño y contenido del comprobante.
func (r *BookingRepo) GetAttachment(ctx context.Context, id string) (*entity.Attachment, error) {
	return getAttachment(ctx, r.db, "bookings", id)
}

// Delete elimina una reserva por ID.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "bookings", id)
}

// List lista reservas de más reciente a más antigua con total sin paginar.
func (r *BookingRepo) List(ctx context.Context, f repository.BookingFilter) ([]*entity.Booking, int, error) {
	var w where
	if f.AgentID != "" {
		w.add("agent_id::text = ?", f.AgentID)
	}
	if f.CompanyID != "" {
		w.add("company_id::text = ?", f.CompanyID)
	}
	if f.From != nil {
		w.add("sale_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("sale_date <= ?", *f.To)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		w.add("(passenger_name ILIKE ? OR destination ILIKE ? OR locators ILIKE ?)", "%"+s+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query, args := page(`SELECT `+bookingColumns+` FROM bookings`+w.String()+
		` ORDER BY sale_date DESC NULLS LAST, created_at DESC`, w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// bookingDest punteros de destino en el orden de bookingColumns.
func bookingDest(b *entity.Booking, companyID **string, statuses *[3]string) []any {
	c := &b.Costs
	return []any{
		&b.ID, &b.AgentID, companyID, &b.SaleDate, &b.TravelDate, &b.Product, &b.PaymentMode,
		&b.PassengerName, &b.PassengerPhone, &b.PassengerEmail, &b.Locators, &b.ExecutiveName, &b.ExecutiveEmail,
		&b.Destination, &b.Comments, &b.SalePrice, &c.Hotel, &c.Flight, &c.Transfer, &c.Insurance,
		&c.Tour, &c.Cruise, &c.Excursion, &c.Package, &b.Bonus, &statuses[0], &statuses[1],
		&statuses[2], &b.Attachment.Name, &b.Attachment.Size, &b.NetCost, &b.GrossProfit, &b.AgentCommission,
		&b.AgencyMargin, &b.CreatedAt, &b.UpdatedAt,
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	var companyID *string
	var statuses [3]string
	if err := row.Scan(bookingDest(&b, &companyID, &statuses)...); err != nil {
		return nil, err
	}
	finishBooking(&b, companyID, statuses)
	return &b, nil
}

func finishBooking(b *entity.Booking, companyID *string, statuses [3]string) {
	b.CompanyID = deref(companyID)
	b.PaymentStatus = entity.PaymentStatus(statuses[0])
	b.CollectionStatus = entity.CollectionStatus(statuses[1])
	b.IssuanceStatus = entity.IssuanceStatus(statuses[2])
}
