package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
)

func TestGenerateSettlementPDF(t *testing.T) {
	sale := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	doc := dto.SettlementDocument{
		CompanyName: "Andes",
		Period:      dto.PeriodDTO{Label: "Marzo 2024"},
		Settlement: dto.SettlementDTO{
			Key: "ana", FullName: "Ana Pérez", Count: 1,
			Commission: decimal.NewFromInt(200), Salary: decimal.NewFromInt(100),
			TotalToPay: decimal.NewFromInt(300), Status: "No Pagado",
		},
		Entries: []dto.CommissionEntryDTO{{
			BookingID: "b1", SaleDate: &sale, PassengerName: "Juan", Destination: "Cusco",
			SalePrice: decimal.NewFromInt(1000), GrossProfit: decimal.NewFromInt(400),
			AgentCommission: decimal.NewFromInt(200),
		}},
		GeneratedAt: sale,
	}

	out, err := NewMarotoSettlementGenerator().GenerateSettlementPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSettlementPDF_SinReservas(t *testing.T) {
	out, err := NewMarotoSettlementGenerator().GenerateSettlementPDF(context.Background(), dto.SettlementDocument{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateSettlementPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoSettlementGenerator().GenerateSettlementPDF(ctx, dto.SettlementDocument{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1.234.567,89", formatMoney(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "$0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "-$40,00", formatMoney(decimal.NewFromInt(-40)))
	assert.Equal(t, "$999,50", formatMoney(decimal.RequireFromString("999.5")))
}
