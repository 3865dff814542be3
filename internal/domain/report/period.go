package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Presets de período.
const (
	PresetLast30Days   = "ultimos_30_dias"
	PresetCurrentMonth = "mes_actual"
)

// Period rango de fechas inclusivo a granularidad de día.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains informa si t cae dentro del período (comparando solo la fecha).
func (p Period) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.Start.Location())
	return !day.Before(p.Start) && !day.After(p.End)
}

// Key "YYYY-MM" del mes de inicio.
func (p Period) Key() string { return p.Start.Format("2006-01") }

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName nombre del mes en español.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// monthLookup nombres plegados (minúsculas, sin acentos) en español e inglés.
var monthLookup = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March, "abril": time.April,
	"mayo": time.May, "junio": time.June, "julio": time.July, "agosto": time.August,
	"septiembre": time.September, "setiembre": time.September, "octubre": time.October,
	"noviembre": time.November, "diciembre": time.December,
	"january": time.January, "february": time.February, "march": time.March, "april": time.April,
	"may": time.May, "june": time.June, "july": time.July, "august": time.August,
	"september": time.September, "october": time.October, "november": time.November,
	"december": time.December,
}

var (
	yearMonthRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:\s*\(.*\))?$`)
	nameYearRe  = regexp.MustCompile(`^([a-z]+)\s*(?:de\s+)?(\d{4})$`)
	folder      = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
)

func fold(s string) string {
	out, _, err := transform.String(folder, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// ResolvePeriod interpreta el token de período de un reporte:
//
//	"ultimos_30_dias" | "last_30_days"   → hoy-30d .. hoy
//	"mes_actual" | "current_month"       → mes en curso
//	"2024-03" | "2024-03 (Marzo)"        → ese mes
//	"Marzo 2024" | "march 2024" | "marzo de 2024"
//
// Cualquier otra entrada, incluida la vacía, cae en los últimos 30 días.
func ResolvePeriod(token string, now time.Time) Period {
	t := fold(token)
	switch t {
	case PresetLast30Days, "last_30_days":
		return LastDays(now, 30)
	case PresetCurrentMonth, "current_month":
		return MonthPeriod(now.Year(), now.Month(), now.Location())
	}
	if year, month, ok := parseMonthToken(t); ok {
		return MonthPeriod(year, month, now.Location())
	}
	return LastDays(now, 30)
}

// ParseMonth acepta los mismos formatos de mes que ResolvePeriod; ok=false si no es un mes.
func ParseMonth(token string) (year int, month time.Month, ok bool) {
	return parseMonthToken(fold(token))
}

func parseMonthToken(t string) (int, time.Month, bool) {
	if m := yearMonthRe.FindStringSubmatch(t); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return year, time.Month(month), true
		}
		return 0, 0, false
	}
	if m := nameYearRe.FindStringSubmatch(t); m != nil {
		month, ok := monthLookup[m[1]]
		if !ok {
			return 0, 0, false
		}
		year, _ := strconv.Atoi(m[2])
		return year, month, true
	}
	return 0, 0, false
}

// LastDays período [hoy-n, hoy].
func LastDays(now time.Time, n int) Period {
	end := truncateDay(now)
	return Period{Start: end.AddDate(0, 0, -n), End: end, Label: fmt.Sprintf("Últimos %d días", n)}
}

// MonthPeriod del primer al último día del mes.
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, -1),
		Label: fmt.Sprintf("%s %d", MonthName(month), year),
	}
}

// MonthOption opción de selector de mes.
type MonthOption struct {
	Value string // "YYYY-MM"
	Label string // "Marzo 2024"
}

// PreviousMonths los últimos n meses incluyendo el actual, del más antiguo al más reciente.
func PreviousMonths(now time.Time, n int) []MonthOption {
	out := make([]MonthOption, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		out = append(out, MonthOption{
			Value: m.Format("2006-01"),
			Label: fmt.Sprintf("%s %d", MonthName(m.Month()), m.Year()),
		})
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
