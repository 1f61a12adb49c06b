package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

// TelnetListener serves sessions to telnet clients.
type TelnetListener struct {
	port uint16
	cm   *ConnectionManager
}

func NewTelnetListener(port uint16, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		port: port,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	sessions := newTelnetSessions(l.cm)
	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), sessions)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- svr.ListenAndServe()
	}()

	slog.InfoContext(ctx, "listening for telnet", "port", l.port)

	select {
	case err := <-serveErr:
		sessions.close()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, syscall.EADDRINUSE):
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		default:
			return fmt.Errorf("serving telnet on port %d: %w", l.port, err)
		}
	case <-ctx.Done():
		svr.Stop()
		sessions.close()
		<-serveErr
		return nil
	}
}

// telnetSessions runs a session for every telnet connection. All of them
// share one context so shutdown ends them together.
type telnetSessions struct {
	cm     *ConnectionManager
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newTelnetSessions(cm *ConnectionManager) *telnetSessions {
	ctx, cancel := context.WithCancel(context.Background())
	return &telnetSessions{
		cm:     cm,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *telnetSessions) HandleTelnet(conn *telnet.Connection) {
	s.wg.Add(1)
	defer s.wg.Done()

	defer func() {
		if err := conn.Close(); err != nil {
			slog.ErrorContext(s.ctx, "closing telnet connection", "error", err)
		}
	}()

	s.cm.AcceptConnection(s.ctx, ProtocolTelnet, newCRLFReadWriter(conn))
}

// close ends every running session and waits for them to finish.
func (s *telnetSessions) close() {
	s.cancel()
	s.wg.Wait()
}
