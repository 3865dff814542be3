package ports

import "context"

// SelectionStore guarda la empresa de trabajo elegida por un agente master/admin.
// La capa HTTP la lee y la pasa como parámetro explícito; los casos de uso no la consultan.
type SelectionStore interface {
	// Get devuelve "" si no hay selección.
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, companyID string) error
	Clear(ctx context.Context, userID string) error
}
