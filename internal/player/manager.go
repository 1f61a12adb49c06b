package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/engine"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

const maxSelectTries = 3

// Manager starts a fresh adventure for every connection it is handed.
// Sessions share the authored content and the command handler but never a
// World.
type Manager struct {
	dict      *game.Dictionary
	scenario  storage.Identifier
	handler   *commands.Handler
	publisher TurnPublisher
	width     int
}

// NewManager creates a Manager. An empty scenario lets each player choose
// from every loaded scenario. pub may be nil.
func NewManager(dict *game.Dictionary, scenario storage.Identifier, h *commands.Handler, pub TurnPublisher) *Manager {
	return &Manager{
		dict:      dict,
		scenario:  scenario,
		handler:   h,
		publisher: pub,
	}
}

// SetWrapWidth sets the column responses are word-wrapped at. Zero uses
// the display default.
func (m *Manager) SetWrapWidth(width int) {
	m.width = width
}

// Start blocks until ctx is canceled. Sessions are ended by their
// listeners.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// RunSession plays one adventure over conn. It returns once the adventure
// ends or the connection does.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	id := uuid.NewString()
	logger := slog.With("session", id)

	SessionsActive.Inc()
	defer SessionsActive.Dec()

	s := newSession(id, conn, m.publisher, logger, m.width)
	go s.readInput()
	defer s.close()

	logger.InfoContext(ctx, "session started")

	state, err := m.play(ctx, s)
	outcome := outcomeOf(state, s.hungUp, err)
	SessionsTotal.WithLabelValues(outcome).Inc()

	if err != nil && !errors.Is(err, context.Canceled) {
		logError(ctx, logger, "session failed", err)
		return err
	}

	logger.InfoContext(ctx, "session ended", "outcome", outcome)
	return nil
}

func (m *Manager) play(ctx context.Context, s *Session) (game.State, error) {
	scenario, ok, err := m.chooseScenario(ctx, s)
	if err != nil || !ok {
		return game.StateQuit, err
	}

	world, err := m.dict.NewWorld(scenario)
	if err != nil {
		return game.StatePlaying, fmt.Errorf("creating world: %w", err)
	}

	s.logger.InfoContext(ctx, "adventure started", "scenario", scenario)

	err = s.Play(ctx, engine.New(world, m.handler))
	return world.State(), err
}

// chooseScenario returns the configured scenario, or asks the player to pick
// one when there is a choice. ok is false if the input ended first.
func (m *Manager) chooseScenario(ctx context.Context, s *Session) (storage.Identifier, bool, error) {
	if m.scenario != "" {
		return m.scenario, true, nil
	}

	all := m.dict.Scenarios.GetAll()
	switch len(all) {
	case 0:
		return "", false, fmt.Errorf("no scenarios loaded")
	case 1:
		for id := range all {
			return id, true, nil
		}
	}

	sel := newSelector(all)
	for range maxSelectTries {
		lines := append([]string{"Choose your adventure:"}, sel.Rows()...)
		if err := s.writeLines(lines); err != nil {
			return "", false, err
		}
		if err := s.prompt(); err != nil {
			return "", false, err
		}

		line, ok, err := s.readLine(ctx)
		if err != nil || !ok {
			return "", false, err
		}

		if i, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			if id := sel.Select(i); id != "" {
				return id, true, nil
			}
		}
		if err := s.writeLines([]string{"Invalid selection!"}); err != nil {
			return "", false, err
		}
	}

	return "", false, fmt.Errorf("no scenario chosen after %d tries", maxSelectTries)
}

func outcomeOf(state game.State, hungUp bool, err error) string {
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		return OutcomeError
	case err != nil || hungUp:
		return OutcomeDisconnected
	case state == game.StateWon:
		return OutcomeWon
	default:
		return OutcomeQuit
	}
}
