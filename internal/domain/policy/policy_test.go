package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

const (
	companyA = "company-a"
	companyB = "company-b"
)

func actor(id string, role entity.Role, company string) policy.Actor {
	return policy.Actor{ID: id, Username: id, Role: role, CompanyID: company}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanCreateRole
// ──────────────────────────────────────────────────────────────────────────────

func TestCanCreateRole_ControlingNoCreaAdmin(t *testing.T) {
	assert.False(t, policy.CanCreateRole(entity.RoleControling, entity.RoleAdmin))
	assert.True(t, policy.CanCreateRole(entity.RoleControling, entity.RoleEjecutivo))
	assert.False(t, policy.CanCreateRole(entity.RoleAdmin, entity.RoleMaster))
}

func TestCanCreateRole_Matriz(t *testing.T) {
	cases := []struct {
		actor, target entity.Role
		want          bool
	}{
		{entity.RoleMaster, entity.RoleMaster, false},
		{entity.RoleMaster, entity.RoleAdmin, true},
		{entity.RoleMaster, entity.RoleAnalista, true},
		{entity.RoleAdmin, entity.RoleAdmin, false},
		{entity.RoleAdmin, entity.RoleControling, true},
		{entity.RoleControling, entity.RoleControling, false},
		{entity.RoleControling, entity.RoleAnalista, true},
		{entity.RoleEjecutivo, entity.RoleAnalista, false},
		{entity.RoleAnalista, entity.RoleEjecutivo, false},
		{entity.RoleMaster, entity.Role("vendedor"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.CanCreateRole(tc.actor, tc.target), "%s → %s", tc.actor, tc.target)
	}
}

func TestOutranks_EjecutivoYAnalistaSonPares(t *testing.T) {
	assert.False(t, policy.Outranks(entity.RoleEjecutivo, entity.RoleAnalista))
	assert.False(t, policy.Outranks(entity.RoleAnalista, entity.RoleEjecutivo))
	assert.True(t, policy.Outranks(entity.RoleControling, entity.RoleAnalista))
	assert.False(t, policy.Outranks(entity.RoleMaster, entity.RoleMaster))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAssignCompany / CanEditBooking
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAssignCompany(t *testing.T) {
	ctrl := actor("c", entity.RoleControling, companyA)
	assert.True(t, policy.CanAssignCompany(ctrl, ""))
	assert.True(t, policy.CanAssignCompany(ctrl, companyA))
	assert.False(t, policy.CanAssignCompany(ctrl, companyB))

	assert.True(t, policy.CanAssignCompany(actor("a", entity.RoleAdmin, ""), companyB))
	assert.False(t, policy.CanAssignCompany(actor("e", entity.RoleEjecutivo, companyA), companyA))
}

func TestCanEditBooking(t *testing.T) {
	b := &entity.Booking{AgentID: "owner", CompanyID: companyA}
	assert.True(t, policy.CanEditBooking(actor("owner", entity.RoleEjecutivo, companyA), b))
	assert.False(t, policy.CanEditBooking(actor("otro", entity.RoleEjecutivo, companyA), b))
	assert.True(t, policy.CanEditBooking(actor("ctrl", entity.RoleControling, companyB), b))
	assert.True(t, policy.CanEditBooking(actor("adm", entity.RoleAdmin, ""), b))
}

func TestCanViewBooking_ControlingSoloSuEmpresa(t *testing.T) {
	b := &entity.Booking{AgentID: "owner", CompanyID: companyA}
	assert.True(t, policy.CanViewBooking(actor("ctrl", entity.RoleControling, companyA), b))
	assert.False(t, policy.CanViewBooking(actor("ctrl", entity.RoleControling, companyB), b))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanDeleteAgent / CanEditAgent
// ──────────────────────────────────────────────────────────────────────────────

func TestCanDeleteAgent(t *testing.T) {
	master := actor("m", entity.RoleMaster, "")
	protected := &entity.Agent{ID: "p", Username: policy.ProtectedUsername, Role: entity.RoleAdmin}
	assert.False(t, policy.CanDeleteAgent(master, protected), "la identidad protegida no se elimina")

	admin := &entity.Agent{ID: "a2", Username: "a2", Role: entity.RoleAdmin}
	assert.True(t, policy.CanDeleteAgent(master, admin))
	assert.False(t, policy.CanDeleteAgent(actor("a1", entity.RoleAdmin, ""), admin), "mismo rango no elimina")

	exec := &entity.Agent{ID: "e", Username: "e", Role: entity.RoleEjecutivo, CompanyID: companyA}
	assert.True(t, policy.CanDeleteAgent(actor("c", entity.RoleControling, companyA), exec))
	assert.False(t, policy.CanDeleteAgent(actor("c", entity.RoleControling, companyB), exec))
	assert.False(t, policy.CanDeleteAgent(actor("x", entity.RoleAnalista, companyA), exec))

	ctrl := &entity.Agent{ID: "c2", Username: "c2", Role: entity.RoleControling, CompanyID: companyA}
	assert.False(t, policy.CanDeleteAgent(actor("c", entity.RoleControling, companyA), ctrl))
}

func TestCanEditAgent_UnoMismoSinCambiarRol(t *testing.T) {
	self := &entity.Agent{ID: "e", Username: "e", Role: entity.RoleEjecutivo, CompanyID: companyA}
	me := actor("e", entity.RoleEjecutivo, companyA)

	assert.True(t, policy.CanEditAgent(me, self, entity.RoleEjecutivo, companyA))
	assert.False(t, policy.CanEditAgent(me, self, entity.RoleControling, companyA), "no puede auto-promoverse")
	assert.False(t, policy.CanEditAgent(me, self, entity.RoleEjecutivo, companyB))
}

func TestCanEditAgent_SuperiorConReglasDeAlta(t *testing.T) {
	exec := &entity.Agent{ID: "e", Username: "e", Role: entity.RoleEjecutivo, CompanyID: companyA}
	ctrl := actor("c", entity.RoleControling, companyA)

	assert.True(t, policy.CanEditAgent(ctrl, exec, entity.RoleAnalista, companyA))
	assert.False(t, policy.CanEditAgent(ctrl, exec, entity.RoleAdmin, companyA))
	assert.False(t, policy.CanEditAgent(ctrl, exec, entity.RoleAnalista, companyB))
	assert.False(t, policy.CanEditAgent(actor("e2", entity.RoleEjecutivo, companyA), exec, entity.RoleEjecutivo, companyA))
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance por empresa y features
// ──────────────────────────────────────────────────────────────────────────────

func TestScopeCompany(t *testing.T) {
	assert.Equal(t, companyB, policy.ScopeCompany(actor("a", entity.RoleAdmin, companyA), companyB))
	assert.Equal(t, "", policy.ScopeCompany(actor("m", entity.RoleMaster, ""), ""))
	assert.Equal(t, companyA, policy.ScopeCompany(actor("c", entity.RoleControling, companyA), companyB))
}

func TestCanUseFeature(t *testing.T) {
	company := &entity.Company{ID: companyA, ManagementEnabled: true}
	exec := actor("e", entity.RoleEjecutivo, companyA)

	assert.True(t, policy.CanUseFeature(exec, company, entity.FeatureManagement))
	assert.False(t, policy.CanUseFeature(exec, company, entity.FeatureProducts))
	assert.False(t, policy.CanUseFeature(exec, nil, entity.FeatureManagement))
	assert.True(t, policy.CanUseFeature(actor("a", entity.RoleAdmin, ""), nil, entity.FeatureProducts))
}
