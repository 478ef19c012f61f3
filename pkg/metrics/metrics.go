package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the link budget metrics exposed by the web API.
type Registry struct {
	registry *prometheus.Registry

	CalculationsTotal      *prometheus.CounterVec
	CalculationErrorsTotal *prometheus.CounterVec
	ReceivedPowerDBm       prometheus.Histogram
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.CalculationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "dipole_link_calculations_total",
			Help: "Link budget calculations by antenna case",
		},
		[]string{"case"},
	)

	r.CalculationErrorsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "dipole_link_calculation_errors_total",
			Help: "Rejected link budget calculations by reason",
		},
		[]string{"reason"},
	)

	r.ReceivedPowerDBm = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dipole_link_received_power_dbm",
			Help:    "Received power of successful calculations in dBm",
			Buckets: prometheus.LinearBuckets(-150, 15, 12),
		},
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
