package ports

// Metrics contadores de dominio. Las etiquetas son valores cortos y de cardinalidad baja.
type Metrics interface {
	BookingSaved(operation string)
	ReportGenerated(report string)
	DeleteRefused(entity string)
}

// NopMetrics descarta todas las mediciones.
type NopMetrics struct{}

func (NopMetrics) BookingSaved(string)    {}
func (NopMetrics) ReportGenerated(string) {}
func (NopMetrics) DeleteRefused(string)   {}
