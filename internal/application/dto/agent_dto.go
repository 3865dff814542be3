package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAgentRequest entrada para crear un agente (password en texto, se hashea en use case).
type CreateAgentRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=80"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"omitempty,max=100"`
	NationalID     string `json:"rut" validate:"omitempty,max=20"`
	BirthDate      string `json:"birth_date"`
	HireDate       string `json:"hire_date"`
	Phone          string `json:"phone"`
	PersonalEmail  string `json:"personal_email" validate:"omitempty,email"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address"`
	CommissionRate Amount `json:"commission_rate"`
	Salary         Amount `json:"salary"`
	Role           string `json:"role" validate:"required,oneof=master admin controling ejecutivo analista"`
	CompanyID      string `json:"company_id" validate:"omitempty,uuid"`
}

// UpdateAgentRequest entrada para editar un agente (campos opcionales).
type UpdateAgentRequest struct {
	Password       *string `json:"password" validate:"omitempty,min=8"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	NationalID     *string `json:"rut" validate:"omitempty,max=20"`
	BirthDate      *string `json:"birth_date"`
	HireDate       *string `json:"hire_date"`
	Phone          *string `json:"phone"`
	PersonalEmail  *string `json:"personal_email" validate:"omitempty,email"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Address        *string `json:"address"`
	CommissionRate *Amount `json:"commission_rate"`
	Salary         *Amount `json:"salary"`
	Status         *string `json:"status" validate:"omitempty,oneof=Activo Inactivo"`
	Role           *string `json:"role" validate:"omitempty,oneof=master admin controling ejecutivo analista"`
	CompanyID      *string `json:"company_id" validate:"omitempty,uuid"`
}

// AgentListRequest filtros del listado de agentes.
type AgentListRequest struct {
	PageRequest
	Search    string `query:"q"`
	CompanyID string `query:"company_id"`
}

// AgentResponse salida de un agente (sin password).
type AgentResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id,omitempty"`
	Username       string          `json:"username"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	NationalID     string          `json:"rut,omitempty"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	HireDate       *time.Time      `json:"hire_date,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	PersonalEmail  string          `json:"personal_email,omitempty"`
	Email          string          `json:"email"`
	Address        string          `json:"address,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Salary         decimal.Decimal `json:"salary"`
	Status         string          `json:"status"`
	Role           string          `json:"role"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AgentListResponse lista paginada de agentes.
type AgentListResponse struct {
	Items []AgentResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
