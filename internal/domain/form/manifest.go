// Package form asigna en bloque valores de formulario a una entidad a partir de un
// manifiesto declarado estáticamente: lista ordenada de campos con su tipo semántico.
//
// Los valores mal formados nunca producen error: los montos valen cero, las fechas
// quedan sin definir y los enumerados fuera de rango quedan vacíos.
package form

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/pkg/money"
)

// Kind tipo semántico de un campo.
type Kind int

const (
	KindText Kind = iota
	KindMoney
	KindDate
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMoney:
		return "money"
	case KindDate:
		return "date"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Field un campo asignable de T.
type Field[T any] struct {
	Name    string
	Kind    Kind
	Allowed []string // solo KindEnum
	assign  func(*T, string)
}

// Text campo de texto libre; se recortan espacios.
func Text[T any](name string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Kind: KindText, assign: func(t *T, v string) { set(t, strings.TrimSpace(v)) }}
}

// Money campo monetario coercionado con money.Parse.
func Money[T any](name string, set func(*T, decimal.Decimal)) Field[T] {
	return Field[T]{Name: name, Kind: KindMoney, assign: func(t *T, v string) { set(t, money.Parse(v)) }}
}

// Date campo fecha; si no se reconoce el formato queda nil.
func Date[T any](name string, set func(*T, *time.Time)) Field[T] {
	return Field[T]{Name: name, Kind: KindDate, assign: func(t *T, v string) { set(t, ParseDate(v)) }}
}

// Enum campo con valores permitidos; un valor fuera de la lista asigna "".
func Enum[T any](name string, allowed []string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Kind: KindEnum, Allowed: allowed, assign: func(t *T, v string) {
		v = strings.TrimSpace(v)
		if !slices.Contains(allowed, v) {
			v = ""
		}
		set(t, v)
	}}
}

// Manifest campos asignables de T, en orden.
type Manifest[T any] []Field[T]

// Apply asigna a target los campos presentes en values y devuelve sus nombres.
// Los campos ausentes no se modifican.
func (m Manifest[T]) Apply(target *T, values map[string]string) []string {
	applied := make([]string, 0, len(values))
	for _, f := range m {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		f.assign(target, v)
		applied = append(applied, f.Name)
	}
	return applied
}

// Embed adapta un manifiesto de U a T, donde get devuelve el U contenido en T.
func Embed[T, U any](m Manifest[U], get func(*T) *U) Manifest[T] {
	out := make(Manifest[T], len(m))
	for i, f := range m {
		assign := f.assign
		out[i] = Field[T]{Name: f.Name, Kind: f.Kind, Allowed: f.Allowed, assign: func(t *T, v string) { assign(get(t), v) }}
	}
	return out
}

// Names nombres de los campos en orden.
func (m Manifest[T]) Names() []string {
	names := make([]string, len(m))
	for i, f := range m {
		names[i] = f.Name
	}
	return names
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "2006/01/02", time.RFC3339}

// ParseDate acepta YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY, YYYY/MM/DD y RFC3339. Devuelve nil si ninguno aplica.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}
