package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// NatsServer runs an embedded NATS broker together with the internal client
// connection used to publish and subscribe.
type NatsServer struct {
	ns   *server.Server
	conn *nats.Conn

	ready chan struct{}

	startupTimeout time.Duration
	host           string
	port           int
	serverLogs     bool
}

func NewNatsServer(opts ...ServerOption) (*NatsServer, error) {
	s := &NatsServer{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
		ready:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true, // Let the application handle signals
		NoLog:  !s.serverLogs,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	if s.serverLogs {
		ns.SetLogger(slogAdapter{logger: slog.With("component", "nats")}, true, false)
	}
	s.ns = ns

	return s, nil
}

func (n *NatsServer) Start(ctx context.Context) error {
	n.ns.Start()

	if !n.ns.ReadyForConnections(n.startupTimeout) {
		n.shutdown()
		return fmt.Errorf("nats server not ready for connections")
	}

	// Create internal client connection
	conn, err := nats.Connect(n.ns.ClientURL())
	if err != nil {
		n.shutdown()
		return fmt.Errorf("creating nats client connection: %w", err)
	}
	n.conn = conn
	close(n.ready)

	slog.InfoContext(ctx, "nats server listening", "addr", n.ns.Addr())

	<-ctx.Done()
	n.conn.Close()
	n.shutdown()

	return nil
}

// shutdown stops the broker and waits for it to exit.
func (n *NatsServer) shutdown() {
	n.ns.Shutdown()
	n.ns.WaitForShutdown()
}

// Ready is closed once the server accepts publishes and subscriptions.
func (n *NatsServer) Ready() <-chan struct{} {
	return n.ready
}

// client returns the internal connection once the server is ready.
func (n *NatsServer) client() (*nats.Conn, error) {
	select {
	case <-n.ready:
		return n.conn, nil
	default:
		return nil, fmt.Errorf("nats server not started")
	}
}

// Subscribe creates a subscription on the given subject.
// The handler is called for each message received.
// Returns an unsubscribe function to remove the subscription.
func (n *NatsServer) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	conn, err := n.client()
	if err != nil {
		return nil, err
	}
	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

// Publish sends a message to the given subject
func (n *NatsServer) Publish(subject string, data []byte) error {
	conn, err := n.client()
	if err != nil {
		return err
	}
	return conn.Publish(subject, data)
}

// Flush blocks until every published message has been processed by the
// server.
func (n *NatsServer) Flush() error {
	conn, err := n.client()
	if err != nil {
		return err
	}
	return conn.Flush()
}
