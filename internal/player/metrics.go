package player

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Session outcomes for metrics.
const (
	OutcomeWon          = "won"
	OutcomeQuit         = "quit"
	OutcomeDisconnected = "disconnected"
	OutcomeError        = "error"
)

// SessionsTotal counts finished sessions by outcome.
var SessionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventure_sessions_total",
		Help: "Total number of finished sessions",
	},
	[]string{"outcome"},
)

// SessionsActive is the number of sessions currently being played.
var SessionsActive = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "adventure_sessions_active",
		Help: "Number of sessions currently in progress",
	},
)

// RegisterMetrics registers player package metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(SessionsTotal)
	reg.MustRegister(SessionsActive)
}
