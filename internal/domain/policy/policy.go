// Package policy reúne los predicados de autorización sobre la jerarquía de roles
//
//	master > admin > controling > {ejecutivo, analista}
//
// Son funciones puras: no consultan almacenamiento ni modifican estado. Quien las
// invoca convierte un false en domain.ErrForbidden antes de mutar nada.
package policy

import (
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// ProtectedUsername identidad que nadie puede eliminar.
const ProtectedUsername = "mcontreras"

// Actor es el usuario autenticado de la petición en curso.
type Actor struct {
	ID        string
	Username  string
	Role      entity.Role
	CompanyID string
}

// OperationalRoles roles que venden; los reportes por ejecutivo se restringen a ellos.
func OperationalRoles() []entity.Role {
	return []entity.Role{entity.RoleEjecutivo, entity.RoleAnalista, entity.RoleControling}
}

// rank índice en la jerarquía; ejecutivo y analista comparten nivel.
func rank(r entity.Role) int {
	switch r {
	case entity.RoleMaster:
		return 0
	case entity.RoleAdmin:
		return 1
	case entity.RoleControling:
		return 2
	case entity.RoleEjecutivo, entity.RoleAnalista:
		return 3
	}
	return 99
}

// Outranks informa si a está estrictamente por encima de b.
func Outranks(a, b entity.Role) bool {
	return a.Valid() && rank(a) < rank(b)
}

// IsTopTier master o admin: pueden operar sobre cualquier empresa.
func IsTopTier(r entity.Role) bool {
	return r == entity.RoleMaster || r == entity.RoleAdmin
}

func isOperative(r entity.Role) bool {
	return r == entity.RoleEjecutivo || r == entity.RoleAnalista
}

// CanCreateRole decide si actor puede crear un agente con el rol target.
// master no crea master; admin no crea admin ni master; controling solo ejecutivo o analista.
func CanCreateRole(actor, target entity.Role) bool {
	if !target.Valid() {
		return false
	}
	switch actor {
	case entity.RoleMaster:
		return target != entity.RoleMaster
	case entity.RoleAdmin:
		return target != entity.RoleAdmin && target != entity.RoleMaster
	case entity.RoleControling:
		return isOperative(target)
	}
	return false
}

// CanAssignCompany decide si actor puede asignar companyID ("" = ninguna) a un agente.
func CanAssignCompany(actor Actor, companyID string) bool {
	switch actor.Role {
	case entity.RoleMaster, entity.RoleAdmin:
		return true
	case entity.RoleControling:
		return companyID == "" || companyID == actor.CompanyID
	}
	return false
}

// CanEditBooking master, admin y controling editan cualquier reserva; el resto solo las propias.
func CanEditBooking(actor Actor, b *entity.Booking) bool {
	switch actor.Role {
	case entity.RoleMaster, entity.RoleAdmin, entity.RoleControling:
		return true
	}
	return b != nil && b.AgentID == actor.ID
}

// CanViewBooking master y admin ven todo; controling las de su empresa; el resto las propias.
func CanViewBooking(actor Actor, b *entity.Booking) bool {
	if b == nil {
		return false
	}
	switch {
	case IsTopTier(actor.Role):
		return true
	case actor.Role == entity.RoleControling:
		return actor.CompanyID != "" && b.CompanyID == actor.CompanyID
	}
	return b.AgentID == actor.ID
}

// CanDeleteAgent decide la baja de target. La identidad protegida nunca se elimina.
func CanDeleteAgent(actor Actor, target *entity.Agent) bool {
	if target == nil || target.Username == ProtectedUsername {
		return false
	}
	switch actor.Role {
	case entity.RoleEjecutivo, entity.RoleAnalista:
		return false
	case entity.RoleControling:
		return isOperative(target.Role) && actor.CompanyID != "" && target.CompanyID == actor.CompanyID
	}
	return Outranks(actor.Role, target.Role)
}

// CanEditAgent decide si actor puede dejar a target con newRole y newCompanyID.
// Uno mismo puede editar sus datos, pero no su rol. Sobre otros se exige rango
// estrictamente superior y las mismas reglas que al crear.
func CanEditAgent(actor Actor, target *entity.Agent, newRole entity.Role, newCompanyID string) bool {
	if target == nil {
		return false
	}
	if actor.ID == target.ID {
		return newRole == target.Role &&
			(newCompanyID == target.CompanyID || CanAssignCompany(actor, newCompanyID))
	}
	if target.Username == ProtectedUsername && actor.Role != entity.RoleMaster {
		return false
	}
	if actor.Role == entity.RoleControling && target.CompanyID != actor.CompanyID {
		return false
	}
	return Outranks(actor.Role, target.Role) &&
		CanCreateRole(actor.Role, newRole) &&
		CanAssignCompany(actor, newCompanyID)
}

// CanViewAgent master ve a todos; admin a todos salvo la identidad protegida;
// controling a los de su empresa; el resto solo a sí mismo.
func CanViewAgent(actor Actor, target *entity.Agent) bool {
	if target == nil {
		return false
	}
	if actor.ID == target.ID {
		return true
	}
	switch actor.Role {
	case entity.RoleMaster:
		return true
	case entity.RoleAdmin:
		return target.Username != ProtectedUsername
	case entity.RoleControling:
		return actor.CompanyID != "" && target.CompanyID == actor.CompanyID
	}
	return false
}

// ScopeCompany empresa efectiva de una consulta: master y admin usan la solicitada
// ("" = todas); el resto queda restringido a la propia.
func ScopeCompany(actor Actor, requested string) string {
	if IsTopTier(actor.Role) {
		return requested
	}
	return actor.CompanyID
}

// CanUseFeature master y admin pasan siempre; el resto requiere la feature en su empresa.
func CanUseFeature(actor Actor, company *entity.Company, feature string) bool {
	if IsTopTier(actor.Role) {
		return true
	}
	return company != nil && company.HasFeature(feature)
}

// CanManageCompanies alta, baja y edición de empresas y facturas.
func CanManageCompanies(actor Actor) bool { return IsTopTier(actor.Role) }
