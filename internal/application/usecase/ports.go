package usecase

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Guardar una reserva, o editar la tasa o empresa de su agente, y recalcular sus campos
// derivados ocurre en la misma unidad de trabajo.
type TxRunner interface {
	RunBooking(ctx context.Context, fn func(
		bookings repository.BookingRepository,
		agents repository.AgentRepository,
	) error) error

	RunAgents(ctx context.Context, fn func(agents repository.AgentRepository) error) error
}
