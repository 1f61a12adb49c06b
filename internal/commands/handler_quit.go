package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// QuitHandlerFactory creates handlers that end the session.
type QuitHandlerFactory struct{}

func NewQuitHandlerFactory() *QuitHandlerFactory {
	return &QuitHandlerFactory{}
}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		cmdCtx.World.End(game.StateQuit)
		cmdCtx.Print(cmdCtx.World.Messages().Goodbye)
		return nil
	}, nil
}
