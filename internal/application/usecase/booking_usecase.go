package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// BookingUseCase alta, edición, consulta y baja de reservas.
//
// Guardar una reserva ocurre en una sola transacción: se aplican los campos del
// formulario, se carga el agente dueño y se recalculan los campos derivados con su
// tasa de comisión vigente. Un adjunto rechazado no impide guardar la reserva.
type BookingUseCase struct {
	bookings repository.BookingRepository
	tx       TxRunner
	metrics  ports.Metrics
	log      *logger.Logger
	now      func() time.Time
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(bookings repository.BookingRepository, tx TxRunner, metrics ports.Metrics, log *logger.Logger) *BookingUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BookingUseCase{bookings: bookings, tx: tx, metrics: metrics, log: log, now: time.Now}
}

// Create registra una reserva nueva. values son los campos del formulario; upload es opcional.
// master, admin y controling pueden indicar otro dueño con "agent_id".
func (uc *BookingUseCase) Create(ctx context.Context, actor policy.Actor, values map[string]string, upload *dto.Upload) (*dto.SaveBookingResponse, error) {
	return uc.save(ctx, actor, "", values, upload)
}

// Update modifica una reserva existente. Los campos ausentes conservan su valor.
func (uc *BookingUseCase) Update(ctx context.Context, actor policy.Actor, id string, values map[string]string, upload *dto.Upload) (*dto.SaveBookingResponse, error) {
	return uc.save(ctx, actor, id, values, upload)
}

func (uc *BookingUseCase) save(ctx context.Context, actor policy.Actor, id string, values map[string]string, upload *dto.Upload) (*dto.SaveBookingResponse, error) {
	var warning string
	if upload != nil {
		if err := entity.ValidateAttachment(upload.Filename, upload.Size, upload.Content); err != nil {
			warning = err.Error()
			upload = nil
		}
	}

	op := "update"
	if id == "" {
		op = "create"
	}
	now := uc.now()
	var saved *entity.Booking
	err := uc.tx.RunBooking(ctx, func(bookings repository.BookingRepository, agents repository.AgentRepository) error {
		b, err := uc.loadOrNew(ctx, bookings, actor, id, values, now)
		if err != nil {
			return err
		}
		if op == "update" && (!policy.CanViewBooking(actor, b) || !policy.CanEditBooking(actor, b)) {
			return domain.ErrForbidden
		}
		bookingManifest.Apply(b, values)
		if b.SaleDate == nil && op == "create" {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			b.SaleDate = &today
		}

		owner, err := agents.GetByID(ctx, b.AgentID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrNotFound
		}
		if actor.Role == entity.RoleControling && owner.ID != actor.ID && owner.CompanyID != actor.CompanyID {
			return domain.ErrForbidden
		}
		b.CompanyID = owner.CompanyID
		b.Recompute(owner.CommissionRate)

		if upload != nil {
			b.Attachment = entity.Attachment{
				Name:    entity.AttachmentName(entity.AttachmentBooking, b.ID, upload.Filename, now),
				Size:    upload.Size,
				Content: upload.Content,
			}
		}
		b.UpdatedAt = now
		saved = b
		if op == "create" {
			return bookings.Create(ctx, b)
		}
		return bookings.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingSaved(op)
	ev := uc.log.Info().
		Str("booking_id", saved.ID).
		Str("agent_id", saved.AgentID).
		Str("op", op).
		Str("agency_margin", saved.AgencyMargin.StringFixed(2))
	if warning != "" {
		ev = ev.Str("attachment_warning", warning)
	}
	ev.Msg("reserva guardada")

	return &dto.SaveBookingResponse{Booking: *toBookingResponse(saved), AttachmentWarning: warning}, nil
}

func (uc *BookingUseCase) loadOrNew(ctx context.Context, bookings repository.BookingRepository, actor policy.Actor, id string, values map[string]string, now time.Time) (*entity.Booking, error) {
	if id != "" {
		b, err := bookings.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrNotFound
		}
		if owner := strings.TrimSpace(values["agent_id"]); owner != "" && owner != b.AgentID {
			if !canAssignOwner(actor) {
				return nil, domain.ErrForbidden
			}
			b.AgentID = owner
		}
		return b, nil
	}
	owner := actor.ID
	if requested := strings.TrimSpace(values["agent_id"]); requested != "" && requested != actor.ID {
		if !canAssignOwner(actor) {
			return nil, domain.ErrForbidden
		}
		owner = requested
	}
	return &entity.Booking{ID: uuid.New().String(), AgentID: owner, CreatedAt: now}, nil
}

func canAssignOwner(actor policy.Actor) bool {
	return policy.IsTopTier(actor.Role) || actor.Role == entity.RoleControling
}

// GetByID devuelve la reserva si el actor puede verla.
func (uc *BookingUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.BookingResponse, error) {
	b, err := uc.get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

func (uc *BookingUseCase) get(ctx context.Context, actor policy.Actor, id string) (*entity.Booking, error) {
	b, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanViewBooking(actor, b) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// Attachment devuelve el comprobante de la reserva con su contenido.
func (uc *BookingUseCase) Attachment(ctx context.Context, actor policy.Actor, id string) (*entity.Attachment, error) {
	if _, err := uc.get(ctx, actor, id); err != nil {
		return nil, err
	}
	att, err := uc.bookings.GetAttachment(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil || !att.Present() {
		return nil, domain.ErrNotFound
	}
	return att, nil
}

// Delete elimina la reserva.
func (uc *BookingUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	b, err := uc.get(ctx, actor, id)
	if err != nil {
		return err
	}
	if !policy.CanEditBooking(actor, b) {
		return domain.ErrForbidden
	}
	if err := uc.bookings.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("booking_id", id).Str("actor_id", actor.ID).Msg("reserva eliminada")
	return nil
}

// List lista las reservas visibles para el actor. companyID es la empresa solicitada
// (o la seleccionada en sesión); solo master y admin pueden elegirla.
func (uc *BookingUseCase) List(ctx context.Context, actor policy.Actor, in dto.BookingListRequest) (*dto.BookingListResponse, error) {
	in.DefaultPage()
	f := uc.filterFor(actor, in)
	f.Limit, f.Offset = in.Limit, in.Offset

	list, total, err := uc.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookingResponse(b))
	}
	return &dto.BookingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListAll igual que List pero sin paginar (exportaciones).
func (uc *BookingUseCase) ListAll(ctx context.Context, actor policy.Actor, in dto.BookingListRequest) ([]*entity.Booking, error) {
	list, _, err := uc.bookings.List(ctx, uc.filterFor(actor, in))
	return list, err
}

func (uc *BookingUseCase) filterFor(actor policy.Actor, in dto.BookingListRequest) repository.BookingFilter {
	f := repository.BookingFilter{Search: strings.TrimSpace(in.Search)}
	switch {
	case policy.IsTopTier(actor.Role):
		f.CompanyID = in.CompanyID
		f.AgentID = in.AgentID
	case actor.Role == entity.RoleControling:
		f.CompanyID = actor.CompanyID
		f.AgentID = in.AgentID
		if actor.CompanyID == "" {
			f.AgentID = actor.ID
		}
	default:
		f.AgentID = actor.ID
	}
	if strings.TrimSpace(in.Period) != "" {
		p := report.ResolvePeriod(in.Period, uc.now())
		f.From, f.To = &p.Start, &p.End
	}
	return f
}
