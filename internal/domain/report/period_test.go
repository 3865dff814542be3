package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ginebra-api/internal/domain/report"
)

var now = time.Date(2024, time.March, 15, 17, 30, 0, 0, time.UTC)

func TestResolvePeriod_UltimosTreintaDias(t *testing.T) {
	p := report.ResolvePeriod(report.PresetLast30Days, now)
	assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), p.End)
}

func TestResolvePeriod_FormatosDeMes(t *testing.T) {
	for _, token := range []string{"2024-02", "2024-02 (Febrero)", "Febrero 2024", "febrero de 2024", "February 2024", "  FEBRERO 2024 "} {
		p := report.ResolvePeriod(token, now)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.Start, "token %q", token)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.End, "token %q", token)
		assert.Equal(t, "Febrero 2024", p.Label)
	}
}

func TestResolvePeriod_AcentosYSetiembre(t *testing.T) {
	p := report.ResolvePeriod("Setiembre 2023", now)
	assert.Equal(t, time.September, p.Start.Month())
	p = report.ResolvePeriod("máRZO 2023", now)
	assert.Equal(t, time.March, p.Start.Month())
}

func TestResolvePeriod_EntradaInvalidaCaeEnTreintaDias(t *testing.T) {
	want := report.LastDays(now, 30)
	for _, token := range []string{"", "abc", "2024-13", "Brumario 2024", "13/2024"} {
		assert.Equal(t, want, report.ResolvePeriod(token, now), "token %q", token)
	}
}

func TestResolvePeriod_MesActual(t *testing.T) {
	p := report.ResolvePeriod(report.PresetCurrentMonth, now)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), p.End)
}

func TestPeriod_ContainsEsInclusivo(t *testing.T) {
	p := report.MonthPeriod(2024, time.March, time.UTC)
	assert.True(t, p.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))
}

func TestPreviousMonths_DelMasAntiguoAlActual(t *testing.T) {
	opts := report.PreviousMonths(now, 12)
	assert.Len(t, opts, 12)
	assert.Equal(t, report.MonthOption{Value: "2023-04", Label: "Abril 2023"}, opts[0])
	assert.Equal(t, report.MonthOption{Value: "2024-03", Label: "Marzo 2024"}, opts[11])
}
