package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Protocol labels for connection metrics and logs.
const (
	ProtocolTelnet  = "telnet"
	ProtocolSSH     = "ssh"
	ProtocolConsole = "console"
)

// ConnectionsTotal counts accepted connections by transport.
var ConnectionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adventure_connections_total",
		Help: "Total number of accepted connections by protocol",
	},
	[]string{"protocol"},
)

// RegisterMetrics registers listener metrics with the given Prometheus registry.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(ConnectionsTotal)
}

// SessionRunner plays a session over a connection until it ends.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter) error
}

// ConnectionManager hands accepted connections of every transport to the
// session runner.
type ConnectionManager struct {
	sessions SessionRunner
}

func NewConnectionManager(sessions SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

// AcceptConnection plays a session over conn and returns when it is over.
// Session failures are logged, never returned: they end one connection, not
// the listener.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, protocol string, conn io.ReadWriter) {
	ConnectionsTotal.WithLabelValues(protocol).Inc()
	slog.DebugContext(ctx, "connection accepted", "protocol", protocol)

	if err := m.sessions.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "protocol", protocol, "error", err)
	}
}
