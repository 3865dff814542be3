package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/internal/infrastructure/metrics"
)

func TestPrometheus_Contadores(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus("ginebra", reg)

	m.BookingSaved("create")
	m.BookingSaved("create")
	m.ReportGenerated("sales_detail")
	m.DeleteRefused("company")
	m.ObserveHTTP("GET", "/api/bookings", "200", 12*time.Millisecond)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	again := metrics.NewPrometheus("ginebra", reg)
	again.BookingSaved("update")
	n, err = testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "el segundo registro reutiliza los colectores")
}

func TestPrometheus_ValorPorEtiqueta(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus("ginebra", reg)
	m.DeleteRefused("supplier")
	m.DeleteRefused("supplier")

	expected := `
# HELP ginebra_deletes_refused_total Borrados definitivos rechazados por tener registros asociados.
# TYPE ginebra_deletes_refused_total counter
ginebra_deletes_refused_total{entity="supplier"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ginebra_deletes_refused_total"))
}
