package excel

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

func TestWriter_HojasYValores(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	var noDate *time.Time

	data, err := NewWriter().Write(context.Background(),
		ports.Sheet{
			Name:    "Detalle Ventas",
			Headers: []string{"Ejecutivo", "Reservas", "Venta", "Fecha", "Viaje"},
			Rows: [][]any{
				{"ana", 2, decimal.RequireFromString("1300.456"), day, noDate},
			},
		},
		ports.Sheet{Name: "Resumen/Mensual", Headers: []string{"Mes"}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Detalle Ventas", "ResumenMensual"}, f.GetSheetList())

	rows, err := f.GetRows("Detalle Ventas")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ejecutivo", "Reservas", "Venta", "Fecha", "Viaje"}, rows[0])
	assert.Equal(t, "ana", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "2024-03-10", rows[1][3])

	raw, err := f.GetCellValue("Detalle Ventas", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1300.46", raw)
}

func TestWriter_SinHojas(t *testing.T) {
	data, err := NewWriter().Write(context.Background())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 1)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Hoja3", sheetName("  ", 2))
	assert.Equal(t, "ab", sheetName("a[*]b", 0))
	assert.Len(t, []rune(sheetName(strings.Repeat("x", 40), 0)), 31)

	used := map[string]bool{}
	assert.Equal(t, "Ventas", uniqueName("Ventas", used))
	assert.Equal(t, "Ventas (2)", uniqueName("ventas", used))
}
