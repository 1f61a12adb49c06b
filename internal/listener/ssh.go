package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener serves sessions over ssh. Clients are not authenticated and
// every session channel gets its own adventure.
type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		port:    port,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}

	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Close the listener when the parent context is canceled
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			// Check if shutdown was requested
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.serveConn(connCtx, conn, config)
		}()
	}
}

// serveConn completes the handshake and serves every session channel the
// client opens until the connection closes.
func (l *SshListener) serveConn(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer func() { _ = conn.Close() }()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer func() { _ = sshConn.Close() }()

	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "user", sshConn.User())

	// Closing the connection ends the channel loop below.
	go func() {
		<-ctx.Done()
		_ = sshConn.Close()
	}()

	go ssh.DiscardRequests(reqs)

	var wg sync.WaitGroup
	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			_ = newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.serveChannel(ctx, newChan)
		}()
	}
	wg.Wait()
}

// serveChannel waits for the client to ask for a shell and then plays a
// session on the channel.
func (l *SshListener) serveChannel(ctx context.Context, newChan ssh.NewChannel) {
	ch, requests, err := newChan.Accept()
	if err != nil {
		slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// SSH clients won't forward input until they receive the shell reply.
	shellReady := make(chan struct{})
	go func(in <-chan *ssh.Request) {
		for req := range in {
			switch req.Type {
			case "pty-req":
				// Reject PTY so the client keeps local echo and line buffering.
				_ = req.Reply(false, nil)
			case "shell":
				_ = req.Reply(true, nil)
				close(shellReady)
			default:
				_ = req.Reply(false, nil)
			}
		}
	}(requests)

	select {
	case <-shellReady:
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, ProtocolSSH, newCRLFReadWriter(ch))
}
