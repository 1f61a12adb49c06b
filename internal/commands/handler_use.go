package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// UseHandlerFactory creates handlers for using a carried object. Using
// anything currently has no effect.
type UseHandlerFactory struct{}

func NewUseHandlerFactory() *UseHandlerFactory {
	return &UseHandlerFactory{}
}

func (f *UseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		noun, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Use what??")
		}
		if !cmdCtx.World.Has(game.ObjectId(noun)) {
			return NewUserErrorf("You don't have any %s to use.", noun)
		}
		return NewPendingError("Nothing happens.")
	}, nil
}
