package repository

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// AgentFilter criterios de listado de agentes.
type AgentFilter struct {
	CompanyID       string // vacío = todas
	ExcludeUsername string // oculta una identidad del listado
	OnlyID          string // restringe a un único agente
	Search          string // username, nombre o apellidos
	Limit           int
	Offset          int
}

// AgentRepository puerto de persistencia para agentes (usuarios).
// GetBy* devuelven (nil, nil) si no existe.
type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	GetByID(ctx context.Context, id string) (*entity.Agent, error)
	GetByUsername(ctx context.Context, username string) (*entity.Agent, error)
	GetByEmail(ctx context.Context, email string) (*entity.Agent, error)
	// FindDuplicate devuelve el nombre del campo único (username, rut, email) ya usado
	// por otro agente distinto de excludeID, o "" si no hay conflicto.
	FindDuplicate(ctx context.Context, agent *entity.Agent, excludeID string) (string, error)
	List(ctx context.Context, f AgentFilter) ([]*entity.Agent, int, error)
}
