package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
)

// CommandFunc is the signature for compiled command functions. A handler
// returns a *UserError to reject the command; it must not have printed
// anything in that case. Any other error is fatal to the session.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// HandlerFactory creates the CommandFunc for one verb.
type HandlerFactory interface {
	Create() (CommandFunc, error)
}

// Handler dispatches resolved commands to the handler registered for their
// verb. It holds no session state and may be shared by all sessions.
type Handler struct {
	factories map[parser.Verb]HandlerFactory
	compiled  map[parser.Verb]CommandFunc
}

func NewHandler() *Handler {
	return &Handler{
		factories: make(map[parser.Verb]HandlerFactory),
		compiled:  make(map[parser.Verb]CommandFunc),
	}
}

// NewDefaultHandler returns a compiled Handler with every built-in verb
// registered.
func NewDefaultHandler() (*Handler, error) {
	h := NewHandler()

	builtins := map[parser.Verb]HandlerFactory{
		parser.VerbHelp:      NewHelpHandlerFactory(),
		parser.VerbQuit:      NewQuitHandlerFactory(),
		parser.VerbInventory: NewInventoryHandlerFactory(),
		parser.VerbLook:      NewLookHandlerFactory(),
		parser.VerbGo:        NewMoveHandlerFactory(),
		parser.VerbDrop:      NewDropHandlerFactory(),
		parser.VerbGet:       NewGetHandlerFactory(),
		parser.VerbGive:      NewGiveHandlerFactory(),
		parser.VerbAttack:    NewAttackHandlerFactory(),
		parser.VerbOpen:      NewOpenHandlerFactory(),
		parser.VerbSwim:      NewSwimHandlerFactory(),
		parser.VerbUse:       NewUseHandlerFactory(),
	}
	for verb, f := range builtins {
		if err := h.RegisterFactory(verb, f); err != nil {
			return nil, err
		}
	}

	if err := h.CompileAll(); err != nil {
		return nil, err
	}
	return h, nil
}

// RegisterFactory registers the handler factory for a verb.
func (h *Handler) RegisterFactory(verb parser.Verb, factory HandlerFactory) error {
	if verb == parser.VerbUnknown {
		return fmt.Errorf("cannot register a handler for the unknown verb")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[verb]; exists {
		return fmt.Errorf("handler factory %q already registered", verb)
	}
	h.factories[verb] = factory
	return nil
}

// CompileAll creates the CommandFunc of every registered factory.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	for verb, factory := range h.factories {
		fn, err := factory.Create()
		if err != nil {
			return fmt.Errorf("compiling handler %q: %w", verb, err)
		}
		h.compiled[verb] = fn
	}
	return nil
}

// Exec runs cmd against w and returns the output lines. A rejected command
// produces exactly one line and leaves w unchanged. A returned error means
// the world is broken and the session must end.
func (h *Handler) Exec(ctx context.Context, w *game.World, cmd parser.Command) ([]string, error) {
	start := time.Now()
	verb := cmd.Verb.String()

	fn, ok := h.compiled[cmd.Verb]
	if !ok {
		recordExecution(verb, StatusUnknown, time.Since(start))
		return []string{fmt.Sprintf("I don't understand '%s'", cmd.Word)}, nil
	}

	cmdCtx := NewCommandContext(w, cmd)
	err := fn(ctx, cmdCtx)

	var ue *UserError
	switch {
	case err == nil:
		recordExecution(verb, StatusSuccess, time.Since(start))
		return cmdCtx.Lines(), nil
	case errors.As(err, &ue):
		status := StatusRejected
		if ue.Pending {
			status = StatusPending
		}
		recordExecution(verb, status, time.Since(start))
		return []string{ue.Message}, nil
	default:
		recordExecution(verb, StatusError, time.Since(start))
		return nil, fmt.Errorf("executing %s: %w", cmd, err)
	}
}
