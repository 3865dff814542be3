package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/form"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/money"
)

// AgentUseCase alta, edición, baja lógica y consulta de agentes.
type AgentUseCase struct {
	agents repository.AgentRepository
	tx     TxRunner
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(agents repository.AgentRepository, tx TxRunner) *AgentUseCase {
	return &AgentUseCase{agents: agents, tx: tx}
}

// Create da de alta un agente. El rol y la empresa deben estar permitidos para el actor;
// si controling no indica empresa, el agente queda en la suya.
func (uc *AgentUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	role := entity.Role(in.Role)
	if !policy.CanCreateRole(actor.Role, role) {
		return nil, domain.ErrForbidden
	}
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" && actor.Role == entity.RoleControling {
		companyID = actor.CompanyID
	}
	if !policy.CanAssignCompany(actor, companyID) {
		return nil, domain.ErrForbidden
	}
	rate, ok := money.ParseRate(string(in.CommissionRate))
	if !ok {
		return nil, fmt.Errorf("%w: la comisión debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	agent := &entity.Agent{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Username:       strings.TrimSpace(in.Username),
		PasswordHash:   string(hash),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		NationalID:     strings.TrimSpace(in.NationalID),
		BirthDate:      form.ParseDate(in.BirthDate),
		HireDate:       form.ParseDate(in.HireDate),
		Phone:          strings.TrimSpace(in.Phone),
		PersonalEmail:  strings.TrimSpace(in.PersonalEmail),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Address:        strings.TrimSpace(in.Address),
		CommissionRate: rate,
		Salary:         money.Parse(string(in.Salary)),
		Status:         entity.AgentActive,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err = uc.tx.RunAgents(ctx, func(agents repository.AgentRepository) error {
		field, err := agents.FindDuplicate(ctx, agent, "")
		if err != nil {
			return err
		}
		if field != "" {
			return fmt.Errorf("%w: %s ya registrado", domain.ErrDuplicate, field)
		}
		return agents.Create(ctx, agent)
	})
	if err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// Update edita un agente. Todas las comprobaciones ocurren antes de escribir.
// Si cambia la tasa o la empresa, sus reservas se recalculan en la misma transacción.
func (uc *AgentUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	var out *entity.Agent
	err := uc.tx.RunBooking(ctx, func(bookings repository.BookingRepository, agents repository.AgentRepository) error {
		agent, err := agents.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if agent == nil {
			return domain.ErrNotFound
		}
		newRole := agent.Role
		if in.Role != nil {
			newRole = entity.Role(*in.Role)
		}
		newCompany := agent.CompanyID
		if in.CompanyID != nil {
			newCompany = strings.TrimSpace(*in.CompanyID)
		}
		if !policy.CanEditAgent(actor, agent, newRole, newCompany) {
			return domain.ErrForbidden
		}
		prevRate, prevCompany := agent.CommissionRate, agent.CompanyID
		if in.Status != nil && actor.ID == agent.ID && entity.AgentStatus(*in.Status) != agent.Status {
			return domain.ErrForbidden
		}
		if err := applyAgentUpdate(agent, in); err != nil {
			return err
		}
		agent.Role = newRole
		agent.CompanyID = newCompany
		agent.UpdatedAt = time.Now()

		field, err := agents.FindDuplicate(ctx, agent, agent.ID)
		if err != nil {
			return err
		}
		if field != "" {
			return fmt.Errorf("%w: %s ya registrado", domain.ErrDuplicate, field)
		}
		if err := agents.Update(ctx, agent); err != nil {
			return err
		}
		out = agent
		if agent.CommissionRate.Equal(prevRate) && agent.CompanyID == prevCompany {
			return nil
		}
		return resyncBookings(ctx, bookings, agent)
	})
	if err != nil {
		return nil, err
	}
	return toAgentResponse(out), nil
}

// resyncBookings reescribe empresa y campos derivados de todas las reservas del agente.
func resyncBookings(ctx context.Context, bookings repository.BookingRepository, agent *entity.Agent) error {
	list, _, err := bookings.List(ctx, repository.BookingFilter{AgentID: agent.ID})
	if err != nil {
		return err
	}
	for _, b := range list {
		b.CompanyID = agent.CompanyID
		b.Recompute(agent.CommissionRate)
		b.UpdatedAt = agent.UpdatedAt
		if err := bookings.Update(ctx, b); err != nil {
			return fmt.Errorf("recalcular reserva %s: %w", b.ID, err)
		}
	}
	return nil
}

func applyAgentUpdate(agent *entity.Agent, in dto.UpdateAgentRequest) error {
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		agent.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		name := strings.TrimSpace(*in.FirstName)
		if name == "" {
			return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		agent.FirstName = name
	}
	setTrimmed(&agent.LastName, in.LastName)
	setTrimmed(&agent.NationalID, in.NationalID)
	setTrimmed(&agent.Phone, in.Phone)
	setTrimmed(&agent.PersonalEmail, in.PersonalEmail)
	setTrimmed(&agent.Address, in.Address)
	if in.Email != nil {
		agent.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.BirthDate != nil {
		agent.BirthDate = form.ParseDate(*in.BirthDate)
	}
	if in.HireDate != nil {
		agent.HireDate = form.ParseDate(*in.HireDate)
	}
	if in.CommissionRate != nil {
		rate, ok := money.ParseRate(string(*in.CommissionRate))
		if !ok {
			return fmt.Errorf("%w: la comisión debe estar entre 0 y 100", domain.ErrInvalidInput)
		}
		agent.CommissionRate = rate
	}
	if in.Salary != nil {
		agent.Salary = money.Parse(string(*in.Salary))
	}
	if in.Status != nil {
		agent.Status = entity.AgentStatus(*in.Status)
	}
	return nil
}

// Deactivate baja lógica: el agente queda Inactivo y conserva sus reservas.
// La identidad protegida nunca se da de baja.
func (uc *AgentUseCase) Deactivate(ctx context.Context, actor policy.Actor, id string) error {
	return uc.tx.RunAgents(ctx, func(agents repository.AgentRepository) error {
		agent, err := agents.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if agent == nil {
			return domain.ErrNotFound
		}
		if actor.ID == agent.ID || !policy.CanDeleteAgent(actor, agent) {
			return domain.ErrForbidden
		}
		agent.Status = entity.AgentInactive
		agent.UpdatedAt = time.Now()
		return agents.Update(ctx, agent)
	})
}

// GetByID devuelve el agente si el actor puede verlo.
func (uc *AgentUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.AgentResponse, error) {
	agent, err := uc.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanViewAgent(actor, agent) {
		return nil, domain.ErrForbidden
	}
	return toAgentResponse(agent), nil
}

// List lista los agentes visibles para el actor.
func (uc *AgentUseCase) List(ctx context.Context, actor policy.Actor, in dto.AgentListRequest) (*dto.AgentListResponse, error) {
	in.DefaultPage()
	f := visibleAgents(actor, in.CompanyID)
	f.Search = strings.TrimSpace(in.Search)
	f.Limit, f.Offset = in.Limit, in.Offset

	list, total, err := uc.agents.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAgentResponse(a))
	}
	return &dto.AgentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListAll devuelve todos los agentes visibles, sin paginar (exportaciones).
func (uc *AgentUseCase) ListAll(ctx context.Context, actor policy.Actor, companyID string) ([]*entity.Agent, error) {
	list, _, err := uc.agents.List(ctx, visibleAgents(actor, companyID))
	return list, err
}

func visibleAgents(actor policy.Actor, requestedCompany string) repository.AgentFilter {
	switch actor.Role {
	case entity.RoleMaster:
		return repository.AgentFilter{CompanyID: requestedCompany}
	case entity.RoleAdmin:
		return repository.AgentFilter{CompanyID: requestedCompany, ExcludeUsername: policy.ProtectedUsername}
	case entity.RoleControling:
		if actor.CompanyID == "" {
			return repository.AgentFilter{OnlyID: actor.ID}
		}
		return repository.AgentFilter{CompanyID: actor.CompanyID}
	}
	return repository.AgentFilter{OnlyID: actor.ID}
}
