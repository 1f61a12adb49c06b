package listener

import (
	"context"
	"io"
	"log/slog"
)

// ConsoleListener plays a single session on the process's own terminal.
type ConsoleListener struct {
	in  io.Reader
	out io.Writer
	cm  *ConnectionManager
}

func NewConsoleListener(in io.Reader, out io.Writer, cm *ConnectionManager) *ConsoleListener {
	return &ConsoleListener{
		in:  in,
		out: out,
		cm:  cm,
	}
}

func (l *ConsoleListener) Start(ctx context.Context) error {
	conn := struct {
		io.Reader
		io.Writer
	}{l.in, l.out}

	slog.InfoContext(ctx, "playing on console")
	l.cm.AcceptConnection(ctx, ProtocolConsole, conn)
	slog.InfoContext(ctx, "console session over")

	// Other listeners keep serving after the console session ends.
	<-ctx.Done()
	return nil
}
