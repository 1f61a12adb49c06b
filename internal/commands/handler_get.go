package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// GetHandlerFactory creates handlers for picking up objects from the current
// room. Taking the scenario's win object wins the game.
type GetHandlerFactory struct{}

func NewGetHandlerFactory() *GetHandlerFactory {
	return &GetHandlerFactory{}
}

func (f *GetHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		noun, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Get what??")
		}

		w := cmdCtx.World
		id := game.ObjectId(noun)

		// Unobtainable objects refuse whether or not they are here.
		if obj, ok := w.Object(id); ok && !obj.Obtainable() {
			msg, err := expandMessage("unobtainable", obj.Unobtainable, cmdCtx.data())
			if err != nil {
				return err
			}
			return NewUserError(msg)
		}

		if !w.Take(w.Current(), id) {
			return NewUserErrorf("There is no %s here you can take.", noun)
		}
		cmdCtx.Print("Taken.")

		if id == w.Scenario().WinObject {
			cmdCtx.Print(w.Messages().Win)
			w.End(game.StateWon)
		}
		return nil
	}, nil
}
