package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// BookingFilter criterios de listado de reservas.
type BookingFilter struct {
	AgentID   string
	CompanyID string
	From      *time.Time // fecha de venta, inclusive
	To        *time.Time
	Search    string // pasajero, destino o localizador
	Limit     int
	Offset    int
}

// BookingRepository puerto de persistencia para reservas.
// GetByID no carga el contenido del adjunto; GetAttachment sí.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	Update(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	GetAttachment(ctx context.Context, id string) (*entity.Attachment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f BookingFilter) ([]*entity.Booking, int, error)
}
