// Package engine runs one adventure turn at a time: a raw line in, the
// response lines and resulting state out. It performs no I/O.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
)

// Response is the result of one turn.
type Response struct {
	Lines []string
	State game.State
}

// Engine drives a single World. Like the World it is owned by one session
// and is not safe for concurrent use.
type Engine struct {
	world   *game.World
	handler *commands.Handler
}

func New(w *game.World, h *commands.Handler) *Engine {
	return &Engine{world: w, handler: h}
}

// World returns the world the engine drives.
func (e *Engine) World() *game.World {
	return e.world
}

// State returns the current session state.
func (e *Engine) State() game.State {
	return e.world.State()
}

// Intro returns the scenario's welcome text followed by a description of the
// starting room.
func (e *Engine) Intro() (Response, error) {
	room, err := e.world.Describe(e.world.Current())
	if err != nil {
		return Response{State: e.world.State()}, err
	}

	lines := append([]string{e.world.Messages().Intro}, room...)
	return Response{Lines: lines, State: e.world.State()}, nil
}

// Step processes one line of input. A blank line, or any line once the game
// has ended, produces no output and changes nothing. An error means the
// world invariants no longer hold and the session must end.
func (e *Engine) Step(ctx context.Context, line string) (Response, error) {
	if e.world.State().Terminal() {
		return Response{State: e.world.State()}, nil
	}

	cmd, err := parser.Parse(line)
	if errors.Is(err, parser.ErrEmptyInput) {
		return Response{State: e.world.State()}, nil
	}
	if err != nil {
		return Response{State: e.world.State()}, fmt.Errorf("parsing input: %w", err)
	}

	if _, err := e.world.CurrentRoom(); err != nil {
		return Response{State: e.world.State()}, err
	}

	lines, err := e.handler.Exec(ctx, e.world, cmd)
	if err != nil {
		return Response{State: e.world.State()}, err
	}

	if _, err := e.world.CurrentRoom(); err != nil {
		return Response{State: e.world.State()}, err
	}

	return Response{Lines: lines, State: e.world.State()}, nil
}
