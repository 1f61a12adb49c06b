package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// DropHandlerFactory creates handlers for dropping objects from inventory
// into the current room.
type DropHandlerFactory struct{}

func NewDropHandlerFactory() *DropHandlerFactory {
	return &DropHandlerFactory{}
}

func (f *DropHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		noun, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Drop what??")
		}

		if !cmdCtx.World.Drop(game.ObjectId(noun)) {
			return NewUserErrorf("You are not carrying a %s.", noun)
		}

		cmdCtx.Print("Dropped.")
		return nil
	}, nil
}
