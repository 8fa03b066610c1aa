// Package metrics registra las métricas Prometheus del front de catálogo.
// Register no hace falta: promauto las registra en el registry por defecto.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lostpets"

// UpstreamRequestsTotal cuenta llamadas a la API remota.
// Labels:
//   - operation: login, register, list_pets, get_pet, create_pet, ...
//   - outcome: ok, unauthorized, upstream_error
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of calls to the remote lost-pets API.",
	},
	[]string{"operation", "outcome"},
)

var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of calls to the remote lost-pets API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// SessionEventsTotal cuenta transiciones de sesión.
// Label event: login, register, logout, expired.
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle transitions.",
	},
	[]string{"event"},
)

// HTTPRequestsTotal cuenta requests servidos, por patrón de ruta de chi.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests served.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

func ObserveHTTP(method, route string, status int, started time.Time) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}

// ObserveUpstream registra una llamada ya terminada.
func ObserveUpstream(operation, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func SessionEvent(event string) {
	SessionEventsTotal.WithLabelValues(event).Inc()
}
