// Package observability serves Prometheus metrics and health probes over
// HTTP.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"
)

const shutdownTimeout = 5 * time.Second

// ReadinessChecker returns whether the service is ready to accept players.
type ReadinessChecker func() bool

// Server exposes /metrics and /healthz probes until its context ends.
type Server struct {
	addr     string
	registry *prometheus.Registry
	isReady  ReadinessChecker

	listening chan struct{}
	listener  net.Listener
}

// NewServer creates a server with its own registry holding the Go and
// process collectors. Callers register their own metrics with Registry.
// addr is "host:port"; port 0 picks a free port.
func NewServer(addr string, isReady ReadinessChecker) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Server{
		addr:      addr,
		registry:  registry,
		isReady:   isReady,
		listening: make(chan struct{}),
	}
}

// Registry returns the registry served on /metrics.
func (s *Server) Registry() prometheus.Registerer {
	return s.registry
}

// Listening is closed once the server has bound its address.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Addr returns the bound address, or "" before the server is listening.
func (s *Server) Addr() string {
	select {
	case <-s.listening:
		return s.listener.Addr().String()
	default:
		return ""
	}
}

func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return oops.With("addr", s.addr).Wrapf(err, "listening for metrics")
	}
	s.listener = listener
	close(s.listening)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/healthz/liveness", s.handleLiveness)
	mux.HandleFunc("/healthz/readiness", s.handleReadiness)

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Serve(listener)
	}()

	slog.InfoContext(ctx, "observability server started", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		return oops.With("addr", s.addr).Wrapf(err, "serving metrics")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return oops.With("operation", "shutdown_observability_server").Wrap(err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return oops.With("addr", s.addr).Wrapf(err, "serving metrics")
	}

	slog.InfoContext(ctx, "observability server stopped")
	return nil
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.isReady == nil || s.isReady() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
		return
	}

	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("not ready\n"))
}
