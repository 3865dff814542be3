// Package pdf genera la liquidación de comisiones de un agente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + LIQUIDACIÓN  │  Período + Fecha emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AGENTE: Nombre + clave + cantidad de reservas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Pasajero | Destino | Venta | Utilidad | Com.│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Comisión / Bonos / Sueldo / Descuentos / A PAGAR  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

var _ ports.SettlementPDFGenerator = (*MarotoSettlementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 83, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSettlementGenerator implementa ports.SettlementPDFGenerator usando Maroto v2.
type MarotoSettlementGenerator struct{}

// NewMarotoSettlementGenerator construye el generador.
func NewMarotoSettlementGenerator() *MarotoSettlementGenerator { return &MarotoSettlementGenerator{} }

// GenerateSettlementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSettlementGenerator) GenerateSettlementPDF(ctx context.Context, doc dto.SettlementDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	company := nonEmpty(doc.CompanyName, "Ginebra")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Liquidación de comisiones", true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(agentRow(doc.Settlement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableEntryRows(doc.Entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Settlement))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc dto.SettlementDocument, company string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("LIQUIDACIÓN DE COMISIONES", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Period.Label, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func agentRow(s dto.SettlementDTO) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("AGENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(s.FullName, s.Key), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Ejecutivo: %s   |   Reservas: %d   |   Estado: %s",
				s.Key, s.Count, nonEmpty(s.Status, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Pasajero", 3, align.Left),
		h("Destino", 2, align.Left),
		h("Venta", 2, align.Right),
		h("Utilidad", 1, align.Right),
		h("Comisión", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableEntryRows(entries []dto.CommissionEntryDTO) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		date := "—"
		if e.SaleDate != nil {
			date = e.SaleDate.Format("02/01/2006")
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(e.PassengerName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(e.Destination, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(e.SalePrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatMoney(e.GrossProfit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(e.AgentCommission), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(7).Add(col.New(12).Add(
			text.New("Sin reservas en el período", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		)))
	}
	return result
}

func totalsRow(s dto.SettlementDTO) core.Row {
	labels := col.New(3)
	values := col.New(3)
	lines := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"Comisión:", s.Commission},
		{"Bonos:", s.Bonus},
		{"Sueldo:", s.Salary},
		{"Descuentos:", s.Discounts.Neg()},
	}
	for i, l := range lines {
		top := float64(i * 5)
		labels.Add(text.New(l.name, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}))
		values.Add(text.New(formatMoney(l.amount), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}))
	}
	labels.Add(text.New("TOTAL A PAGAR:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 21,
	}))
	values.Add(text.New(formatMoney(s.TotalToPay), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 21,
	}))

	return row.New(28).Add(col.New(6), labels, values)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Comisiones calculadas con la tasa vigente del agente a la fecha de emisión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney "$1.234.567,89": puntos de miles y coma decimal; negativos con signo.
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + string(buf) + "," + frac
}
