package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

type contractFixture struct {
	uc        *usecase.ContractUseCase
	suppliers *fakeSuppliers
	contracts *fakeContracts
	catalogs  *fakeCatalogs
}

func newContractFixture() contractFixture {
	f := contractFixture{
		suppliers: newFakeSuppliers(
			&entity.Supplier{ID: "s1", CompanyID: "c1", Name: "Sol", State: entity.LifecycleActive},
			&entity.Supplier{ID: "s2", CompanyID: "c2", Name: "Luna", State: entity.LifecycleActive},
			&entity.Supplier{ID: "s3", CompanyID: "c1", Name: "Baja", State: entity.LifecycleInactive},
		),
		contracts: newFakeContracts(),
		catalogs:  newFakeCatalogs(),
	}
	f.uc = usecase.NewContractUseCase(f.contracts, f.catalogs, f.suppliers, nil, nil)
	return f
}

func TestSaveContract_AdjuntoRechazado(t *testing.T) {
	f := newContractFixture()

	res, err := f.uc.SaveContract(context.Background(), ctlActor, "",
		map[string]string{"supplier_id": "s1", "name": "Temporada alta", "start_date": "2025-01-01"},
		&dto.Upload{Filename: "contrato.docx", Size: 100})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AttachmentWarning)
	assert.Nil(t, res.Item.Attachment)
	assert.Equal(t, "s1", res.Item.SupplierID)
	require.NotNil(t, res.Item.StartDate)
	assert.Len(t, f.contracts.byID, 1)
}

func TestSaveContract_Validaciones(t *testing.T) {
	f := newContractFixture()
	ctx := context.Background()

	_, err := f.uc.SaveContract(ctx, ctlActor, "", map[string]string{"name": "Sin proveedor"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.SaveContract(ctx, ctlActor, "", map[string]string{"supplier_id": "s2", "name": "Ajeno"}, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.SaveContract(ctx, ctlActor, "", map[string]string{"supplier_id": "s3", "name": "Inactivo"}, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.SaveContract(ctx, ctlActor, "", map[string]string{"supplier_id": "s1"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveCatalog_CamposComerciales(t *testing.T) {
	f := newContractFixture()
	ctx := context.Background()

	res, err := f.uc.SaveCatalog(ctx, ctlActor, "", map[string]string{
		"supplier_id":     "s1",
		"name":            "Cusco 5 días",
		"base_cost":       "1.200,50",
		"suggested_price": "1500",
		"includes":        "Hotel y traslados",
	}, &dto.Upload{Filename: "cusco.pdf", Size: 4, Content: []byte("%PDF")})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1200.50").Equal(res.Item.BaseCost))
	assert.Equal(t, "Hotel y traslados", res.Item.Includes)
	require.NotNil(t, res.Item.Attachment)
	assert.Contains(t, res.Item.Attachment.Name, "catalogo_")

	att, err := f.uc.CatalogAttachment(ctx, ctlActor, res.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), att.Content)

	upd, err := f.uc.SaveCatalog(ctx, ctlActor, res.Item.ID, map[string]string{"suggested_price": "1600"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cusco 5 días", upd.Item.Name)
	assert.True(t, decimal.NewFromInt(1600).Equal(upd.Item.SuggestedPrice))
}

func TestContract_BajaYBorrado(t *testing.T) {
	f := newContractFixture()
	ctx := context.Background()

	res, err := f.uc.SaveContract(ctx, ctlActor, "", map[string]string{"supplier_id": "s1", "name": "Anual"}, nil)
	require.NoError(t, err)
	id := res.Item.ID

	require.NoError(t, f.uc.DeactivateContract(ctx, ctlActor, id))
	assert.Equal(t, entity.LifecycleInactive, f.contracts.states[id])

	_, err = f.uc.ContractAttachment(ctx, ctlActor, id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin comprobante")

	require.NoError(t, f.uc.PurgeContract(ctx, ctlActor, id))
	assert.Equal(t, []string{id}, f.contracts.deleted)
}
