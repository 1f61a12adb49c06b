package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/engine"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
)

const prompt = "> "

// TurnPublisher receives the transcript of every turn.
type TurnPublisher interface {
	PublishTurn(messaging.Turn) error
}

// Session is one connection playing one adventure. Input is read line by
// line on its own goroutine; everything else happens on the caller's.
type Session struct {
	id        string
	conn      io.ReadWriter
	publisher TurnPublisher
	logger    *slog.Logger
	width     int

	input    chan string
	inputErr chan error
	done     chan struct{}
	hungUp   bool
}

func newSession(id string, conn io.ReadWriter, pub TurnPublisher, logger *slog.Logger, width int) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		publisher: pub,
		logger:    logger,
		width:     width,
		input:     make(chan string),
		inputErr:  make(chan error, 1),
		done:      make(chan struct{}),
	}
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

// readInput feeds lines from the connection into s.input until the
// connection ends or the session is closed.
func (s *Session) readInput() {
	defer close(s.input)

	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		select {
		case s.input <- scanner.Text():
		case <-s.done:
			return
		}
	}
	s.inputErr <- scanner.Err()
}

// readLine waits for the next line of input. ok is false once the
// connection has no more input, which marks the session as hung up.
func (s *Session) readLine(ctx context.Context) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l, more := <-s.input:
		if more {
			return l, true, nil
		}
		select {
		case err := <-s.inputErr:
			if err != nil {
				return "", false, fmt.Errorf("reading input: %w", err)
			}
		default:
		}
		s.hungUp = true
		return "", false, nil
	}
}

// close stops the input goroutine from delivering any more lines.
func (s *Session) close() {
	close(s.done)
}

// Play runs the adventure until it ends, the input ends or ctx is
// canceled. The World's final state says how it ended; the input ending is
// recorded as a quit.
func (s *Session) Play(ctx context.Context, eng *engine.Engine) error {
	intro, err := eng.Intro()
	if err != nil {
		return fmt.Errorf("starting adventure: %w", err)
	}
	if err := s.writeLines(intro.Lines); err != nil {
		return err
	}

	for {
		if err := s.prompt(); err != nil {
			return err
		}

		line, ok, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			eng.World().End(game.StateQuit)
			return nil
		}

		resp, err := eng.Step(ctx, line)
		if err != nil {
			return err
		}
		s.publish(ctx, line, resp)

		if err := s.writeLines(resp.Lines); err != nil {
			return err
		}
		if resp.State.Terminal() {
			return nil
		}
	}
}

func (s *Session) publish(ctx context.Context, line string, resp engine.Response) {
	if s.publisher == nil || len(resp.Lines) == 0 {
		return
	}

	err := s.publisher.PublishTurn(messaging.Turn{
		Session: s.id,
		Input:   line,
		Lines:   resp.Lines,
		State:   resp.State.String(),
		Time:    time.Now(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "publishing transcript", "error", err)
	}
}

func (s *Session) prompt() error {
	_, err := s.conn.Write([]byte(prompt))
	return err
}

// writeLines writes a response, word wrapped, followed by a blank line.
func (s *Session) writeLines(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := s.conn.Write([]byte(display.WrapLines(lines, s.width) + "\n\n"))
	return err
}
