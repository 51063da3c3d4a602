// Package metrics expone las métricas Prometheus de la aplicación sobre un
// registry propio (sin estado global), listo para servir en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics registry y colectores de la API.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTPRequests cuenta peticiones por método, ruta y estado.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration histograma de latencia por método y ruta.
	HTTPDuration *prometheus.HistogramVec
}

// New construye el registry con los colectores de runtime y los de la API.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bodegas_http_requests_total",
		Help: "Total de peticiones HTTP atendidas, por método, ruta y estado.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bodegas_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP en segundos, por método y ruta.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	reg.MustRegister(requests, duration)

	return &Metrics{
		Registry:     reg,
		HTTPRequests: requests,
		HTTPDuration: duration,
	}
}
