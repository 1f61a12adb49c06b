package commands

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status values for command execution metrics.
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusPending  = "pending"
	StatusUnknown  = "unknown_verb"
	StatusError    = "error"
)

// CommandExecutions counts executed commands by canonical verb and outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var CommandExecutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventure_command_executions_total",
		Help: "Total number of command executions",
	},
	[]string{"verb", "status"},
)

// CommandDuration is the histogram for command execution duration.
var CommandDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "adventure_command_duration_seconds",
		Help:    "Command execution duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"verb"},
)

// RegisterMetrics registers command package metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(CommandExecutions)
	reg.MustRegister(CommandDuration)
}

func recordExecution(verb, status string, d time.Duration) {
	CommandExecutions.WithLabelValues(verb, status).Inc()
	CommandDuration.WithLabelValues(verb).Observe(d.Seconds())
}
