package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Role rol de un agente dentro de la jerarquía master > admin > controling > {ejecutivo, analista}.
type Role string

// Roles del sistema.
const (
	RoleMaster     Role = "master"
	RoleAdmin      Role = "admin"
	RoleControling Role = "controling"
	RoleEjecutivo  Role = "ejecutivo"
	RoleAnalista   Role = "analista"
)

// Roles devuelve los roles en orden de jerarquía.
func Roles() []Role {
	return []Role{RoleMaster, RoleAdmin, RoleControling, RoleEjecutivo, RoleAnalista}
}

// Valid informa si el rol pertenece a la jerarquía.
func (r Role) Valid() bool {
	switch r {
	case RoleMaster, RoleAdmin, RoleControling, RoleEjecutivo, RoleAnalista:
		return true
	}
	return false
}

// AgentStatus estado laboral del agente.
type AgentStatus string

const (
	AgentActive   AgentStatus = "Activo"
	AgentInactive AgentStatus = "Inactivo"
)

// Agent es un usuario del sistema: tiene rol, tasa de comisión y es dueño de reservas.
type Agent struct {
	ID             string
	CompanyID      string // vacío = sin empresa
	Username       string
	PasswordHash   string
	FirstName      string
	LastName       string
	NationalID     string // RUT
	BirthDate      *time.Time
	HireDate       *time.Time
	Phone          string
	PersonalEmail  string
	Email          string
	Address        string
	CommissionRate decimal.Decimal // porcentaje 0–100
	Salary         decimal.Decimal
	Status         AgentStatus
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre y apellidos; si ambos están vacíos devuelve el username.
func (a *Agent) FullName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

// IsActive informa si el agente puede iniciar sesión.
func (a *Agent) IsActive() bool { return a.Status != AgentInactive }
