package messaging

import "time"

// ServerOption configures a NatsServer.
type ServerOption func(*NatsServer)

// WithStartTimeout bounds how long Start waits for the broker to accept
// connections.
func WithStartTimeout(d time.Duration) ServerOption {
	return func(s *NatsServer) { s.startupTimeout = d }
}

// WithHost sets the interface the broker binds to.
func WithHost(host string) ServerOption {
	return func(s *NatsServer) { s.host = host }
}

// WithPort sets the client port. -1 picks a free port.
func WithPort(port int) ServerOption {
	return func(s *NatsServer) { s.port = port }
}

// WithServerLogs routes the broker's own log output to slog at debug level.
func WithServerLogs() ServerOption {
	return func(s *NatsServer) { s.serverLogs = true }
}
