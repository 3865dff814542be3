// Package money convierte entradas numéricas sin tipo (texto de formularios, JSON laxo)
// en decimales exactos. Nunca devuelve error: cualquier valor no numérico vale cero.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse convierte v a decimal. Acepta nil, string, decimal.Decimal (o puntero), enteros,
// flotantes, json.Number y fmt.Stringer. Vacío, nil o no numérico → decimal.Zero.
func Parse(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return parseString(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return parseString(*x)
	case json.Number:
		return parseString(x.String())
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(x)
	case float64:
		return parseFloat(x)
	case fmt.Stringer:
		return parseString(x.String())
	default:
		return decimal.Zero
	}
}

// ParseRate es Parse para porcentajes de comisión. ok es false si el valor queda fuera de [0,100].
func ParseRate(v any) (rate decimal.Decimal, ok bool) {
	rate = Parse(v)
	return rate, !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(100))
}

// plainNumber sin notación científica: un exponente enorme haría que la primera suma
// reescale el decimal sin límite.
var plainNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// parseFloat NaN e infinitos valen cero.
func parseFloat(x float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x)
}

func parseString(s string) decimal.Decimal {
	s = Normalize(s)
	if !plainNumber.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Normalize quita espacios y deja un único punto como separador decimal.
//
//	"1.234,56" → "1234.56"   "1,234.56" → "1234.56"   "12,5" → "12.5"
//	"1.234.567" → "1234567"  "1,234,567" → "1234567"
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")
	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	return s
}
