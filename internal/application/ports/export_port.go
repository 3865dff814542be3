package ports

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
)

// Sheet una hoja de cálculo: encabezados y filas de valores simples
// (string, int, float64, time.Time, decimal.Decimal).
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// SpreadsheetWriter serializa hojas a un libro XLSX.
type SpreadsheetWriter interface {
	Write(ctx context.Context, sheets ...Sheet) ([]byte, error)
}

// SettlementPDFGenerator genera la liquidación de un agente en PDF.
type SettlementPDFGenerator interface {
	GenerateSettlementPDF(ctx context.Context, doc dto.SettlementDocument) ([]byte, error)
}
