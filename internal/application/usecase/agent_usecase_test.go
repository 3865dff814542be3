package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
)

func newAgentUseCase(agents ...*entity.Agent) (*usecase.AgentUseCase, *fakeAgents) {
	uc, repo, _ := newAgentUseCaseWithBookings(agents...)
	return uc, repo
}

func newAgentUseCaseWithBookings(agents ...*entity.Agent) (*usecase.AgentUseCase, *fakeAgents, *fakeBookings) {
	repo := newFakeAgents(agents...)
	bookings := newFakeBookings()
	return usecase.NewAgentUseCase(repo, &fakeTx{agents: repo, bookings: bookings}), repo, bookings
}

func createReq(username, role, company string) dto.CreateAgentRequest {
	return dto.CreateAgentRequest{
		Username:       username,
		Password:       "secreto123",
		FirstName:      "Nombre",
		Email:          username + "@GINEBRA.test",
		CommissionRate: "12,5",
		Role:           role,
		CompanyID:      company,
	}
}

func TestAgentCreate_HashYNormaliza(t *testing.T) {
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, repo := newAgentUseCase(master)

	res, err := uc.Create(context.Background(), actorOf(master), createReq("eva", "ejecutivo", "c1"))
	require.NoError(t, err)
	assert.Equal(t, "eva@ginebra.test", res.Email)
	assert.True(t, decimal.RequireFromString("12.5").Equal(res.CommissionRate))
	assert.Equal(t, string(entity.AgentActive), res.Status)

	stored := repo.byID[res.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestAgentCreate_ReglasDeRol(t *testing.T) {
	ctl := agent("k", "ctl", entity.RoleControling, "c1", 0)
	adm := agent("a", "adm", entity.RoleAdmin, "", 0)
	uc, _ := newAgentUseCase(ctl, adm)
	ctx := context.Background()

	_, err := uc.Create(ctx, actorOf(ctl), createReq("x1", "admin", ""))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, actorOf(adm), createReq("x2", "master", ""))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, actorOf(ctl), createReq("x3", "ejecutivo", "c2"))
	assert.ErrorIs(t, err, domain.ErrForbidden, "controling no asigna otra empresa")

	res, err := uc.Create(ctx, actorOf(ctl), createReq("x4", "analista", ""))
	require.NoError(t, err)
	assert.Equal(t, "c1", res.CompanyID, "controling sin empresa indicada usa la propia")
}

func TestAgentCreate_TasaFueraDeRango(t *testing.T) {
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, _ := newAgentUseCase(master)

	in := createReq("eva", "ejecutivo", "")
	in.CommissionRate = "150"
	_, err := uc.Create(context.Background(), actorOf(master), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAgentCreate_Duplicado(t *testing.T) {
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, repo := newAgentUseCase(master, agent("e", "eva", entity.RoleEjecutivo, "", 0))

	_, err := uc.Create(context.Background(), actorOf(master), createReq("eva", "ejecutivo", ""))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "username")
	assert.Len(t, repo.byID, 2)
}

func TestAgentUpdate_NoCambiaSuPropioRol(t *testing.T) {
	adm := agent("a", "adm", entity.RoleAdmin, "", 0)
	uc, _ := newAgentUseCase(adm)

	role := "master"
	_, err := uc.Update(context.Background(), actorOf(adm), adm.ID, dto.UpdateAgentRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	status := string(entity.AgentInactive)
	_, err = uc.Update(context.Background(), actorOf(adm), adm.ID, dto.UpdateAgentRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	phone := " 555 "
	res, err := uc.Update(context.Background(), actorOf(adm), adm.ID, dto.UpdateAgentRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555", res.Phone)
}

func TestAgentUpdate_IdentidadProtegidaSoloMaster(t *testing.T) {
	prot := agent("p", policy.ProtectedUsername, entity.RoleAdmin, "", 0)
	adm := agent("a", "adm", entity.RoleAdmin, "", 0)
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, _ := newAgentUseCase(prot, adm, master)

	phone := "1"
	_, err := uc.Update(context.Background(), actorOf(adm), prot.ID, dto.UpdateAgentRequest{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(context.Background(), actorOf(master), prot.ID, dto.UpdateAgentRequest{Phone: &phone})
	assert.NoError(t, err)
}

func TestAgentDeactivate(t *testing.T) {
	prot := agent("p", policy.ProtectedUsername, entity.RoleAdmin, "", 0)
	ctl := agent("k", "ctl", entity.RoleControling, "c1", 0)
	eva := agent("e", "eva", entity.RoleEjecutivo, "c1", 0)
	otra := agent("o", "otra", entity.RoleEjecutivo, "c2", 0)
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, repo := newAgentUseCase(prot, ctl, eva, otra, master)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Deactivate(ctx, actorOf(master), prot.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Deactivate(ctx, actorOf(master), master.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Deactivate(ctx, actorOf(ctl), otra.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Deactivate(ctx, actorOf(ctl), "nadie"), domain.ErrNotFound)

	require.NoError(t, uc.Deactivate(ctx, actorOf(ctl), eva.ID))
	assert.Equal(t, entity.AgentInactive, repo.byID[eva.ID].Status)
}

func TestAgentList_Visibilidad(t *testing.T) {
	prot := agent("p", policy.ProtectedUsername, entity.RoleAdmin, "", 0)
	adm := agent("a", "adm", entity.RoleAdmin, "", 0)
	ctl := agent("k", "ctl", entity.RoleControling, "c1", 0)
	eva := agent("e", "eva", entity.RoleEjecutivo, "c1", 0)
	otra := agent("o", "otra", entity.RoleEjecutivo, "c2", 0)
	uc, _ := newAgentUseCase(prot, adm, ctl, eva, otra)
	ctx := context.Background()

	all, err := uc.ListAll(ctx, actorOf(adm), "")
	require.NoError(t, err)
	assert.Len(t, all, 4, "admin no ve la identidad protegida")

	mine, err := uc.ListAll(ctx, actorOf(ctl), "c2")
	require.NoError(t, err)
	assert.Len(t, mine, 2, "controling queda en su empresa")

	self, err := uc.List(ctx, actorOf(eva), dto.AgentListRequest{})
	require.NoError(t, err)
	require.Len(t, self.Items, 1)
	assert.Equal(t, eva.ID, self.Items[0].ID)

	_, err = uc.GetByID(ctx, actorOf(eva), otra.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAgentUpdate_CambioDeTasaRecalculaSusReservas(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	leo := agent("a2", "leo", entity.RoleEjecutivo, "c1", 50)
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, _, bookings := newAgentUseCaseWithBookings(ana, leo, master)

	for _, b := range []*entity.Booking{
		{ID: "b1", AgentID: ana.ID, CompanyID: "c1", SalePrice: decimal.NewFromInt(1000)},
		{ID: "b2", AgentID: leo.ID, CompanyID: "c1", SalePrice: decimal.NewFromInt(1000)},
	} {
		b.Costs.Hotel = decimal.NewFromInt(600)
		b.Recompute(decimal.NewFromInt(50))
		require.NoError(t, bookings.Create(context.Background(), b))
	}

	rate := dto.Amount("10")
	company := "c2"
	_, err := uc.Update(context.Background(), actorOf(master), ana.ID,
		dto.UpdateAgentRequest{CommissionRate: &rate, CompanyID: &company})
	require.NoError(t, err)

	got, err := bookings.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, got.AgentCommission.Equal(decimal.NewFromInt(40)), "comisión %s", got.AgentCommission)
	assert.True(t, got.AgencyMargin.Equal(decimal.NewFromInt(360)), "margen %s", got.AgencyMargin)
	assert.Equal(t, "c2", got.CompanyID)

	other, err := bookings.GetByID(context.Background(), "b2")
	require.NoError(t, err)
	assert.True(t, other.AgentCommission.Equal(decimal.NewFromInt(200)), "las reservas de otro agente no cambian")
	assert.Equal(t, "c1", other.CompanyID)
}

func TestAgentUpdate_SinCambioDeTasaNoTocaReservas(t *testing.T) {
	ana := agent("a1", "ana", entity.RoleEjecutivo, "c1", 50)
	master := agent("m", "root", entity.RoleMaster, "", 0)
	uc, _, bookings := newAgentUseCaseWithBookings(ana, master)

	stale := &entity.Booking{ID: "b1", AgentID: ana.ID, CompanyID: "c1", SalePrice: decimal.NewFromInt(1000),
		AgentCommission: decimal.NewFromInt(999)}
	require.NoError(t, bookings.Create(context.Background(), stale))

	same := dto.Amount("50")
	phone := "555"
	_, err := uc.Update(context.Background(), actorOf(master), ana.ID,
		dto.UpdateAgentRequest{CommissionRate: &same, Phone: &phone})
	require.NoError(t, err)

	got, err := bookings.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, got.AgentCommission.Equal(decimal.NewFromInt(999)))
}
