// Package metrics contadores Prometheus del dominio y de la capa HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implementa ports.Metrics y expone además los colectores HTTP.
type Prometheus struct {
	bookingsSaved  *prometheus.CounterVec
	reports        *prometheus.CounterVec
	deletesRefused *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// NewPrometheus registra los colectores en reg; nil usa el registro por defecto.
func NewPrometheus(namespace string, reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		bookingsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_saved_total",
			Help:      "Reservas guardadas por operación (create, update).",
		}, []string{"operation"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reportes generados por tipo.",
		}, []string{"report"}),
		deletesRefused: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletes_refused_total",
			Help:      "Borrados definitivos rechazados por tener registros asociados.",
		}, []string{"entity"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Latencia de las peticiones HTTP en milisegundos.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
	}
	p.bookingsSaved = register(reg, p.bookingsSaved)
	p.reports = register(reg, p.reports)
	p.deletesRefused = register(reg, p.deletesRefused)
	p.httpRequests = register(reg, p.httpRequests)
	if err := reg.Register(p.httpDuration); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(err)
		}
		p.httpDuration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return p
}

// register reutiliza el colector existente si ya estaba registrado (tests, reinicios en caliente).
func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (p *Prometheus) BookingSaved(operation string) {
	p.bookingsSaved.WithLabelValues(operation).Inc()
}

func (p *Prometheus) ReportGenerated(report string) {
	p.reports.WithLabelValues(report).Inc()
}

func (p *Prometheus) DeleteRefused(entity string) {
	p.deletesRefused.WithLabelValues(entity).Inc()
}

// ObserveHTTP registra una petición. route es el patrón de la ruta, no la URL concreta.
func (p *Prometheus) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(method, route, status).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(float64(elapsed) / float64(time.Millisecond))
}
