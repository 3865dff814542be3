// Package excel exporta hojas de cálculo XLSX con excelize.
package excel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

var _ ports.SpreadsheetWriter = (*Writer)(nil)

const (
	maxSheetName = 31
	dateLayout   = "2006-01-02"
	// 4 = "#,##0.00" entre los formatos integrados de Excel.
	moneyFormat = 4
)

// Writer genera un libro con una hoja por ports.Sheet; encabezado en negrita.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

// Write serializa las hojas en orden. Sin hojas devuelve un libro con una hoja vacía.
func (w *Writer) Write(ctx context.Context, sheets ...ports.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("excel style: %w", err)
	}

	used := map[string]bool{}
	for i, sh := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := uniqueName(sheetName(sh.Name, i), used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("excel sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, sh, header, money); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, sh ports.Sheet, header, money int) error {
	if len(sh.Headers) > 0 {
		row := make([]any, len(sh.Headers))
		for i, h := range sh.Headers {
			row[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &row); err != nil {
			return fmt.Errorf("excel header: %w", err)
		}
		if err := f.SetRowStyle(name, 1, 1, header); err != nil {
			return fmt.Errorf("excel header style: %w", err)
		}
	}
	for r, values := range sh.Rows {
		rowNum := r + 2
		if len(sh.Headers) == 0 {
			rowNum = r + 1
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return fmt.Errorf("excel cell: %w", err)
			}
			value, isMoney := cellValue(v)
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("excel cell %s: %w", cell, err)
			}
			if isMoney {
				if err := f.SetCellStyle(name, cell, cell, money); err != nil {
					return fmt.Errorf("excel cell style %s: %w", cell, err)
				}
			}
		}
	}
	return nil
}

// cellValue normaliza los tipos que llegan de los casos de uso. Las fechas se escriben como
// texto YYYY-MM-DD para no depender de la zona horaria del lector.
func cellValue(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case decimal.Decimal:
		return x.Round(2).InexactFloat64(), true
	case *decimal.Decimal:
		if x == nil {
			return "", false
		}
		return x.Round(2).InexactFloat64(), true
	case time.Time:
		if x.IsZero() {
			return "", false
		}
		return x.Format(dateLayout), false
	case *time.Time:
		if x == nil || x.IsZero() {
			return "", false
		}
		return x.Format(dateLayout), false
	case fmt.Stringer:
		return x.String(), false
	}
	return v, false
}

// sheetName quita los caracteres que Excel no admite y recorta a 31.
func sheetName(name string, i int) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = fmt.Sprintf("Hoja%d", i+1)
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(name)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		candidate = string(r) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
