package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBooking inicia una transacción con repos de reservas y agentes atados a ella.
// La lectura de la tasa del dueño y la escritura de la reserva quedan en la misma tx.
func (r *TxRunner) RunBooking(ctx context.Context, fn func(
	bookings repository.BookingRepository,
	agents repository.AgentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewBookingRepository(tx), NewAgentRepository(tx))
	})
}

// RunAgents inicia una transacción con el repo de agentes.
func (r *TxRunner) RunAgents(ctx context.Context, fn func(agents repository.AgentRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewAgentRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
