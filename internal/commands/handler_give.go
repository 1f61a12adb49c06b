package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// GiveHandlerFactory creates handlers for giving an object to someone. No
// recipient accepts anything yet, so a well-formed give always gets the
// placeholder refusal.
type GiveHandlerFactory struct{}

func NewGiveHandlerFactory() *GiveHandlerFactory {
	return &GiveHandlerFactory{}
}

func (f *GiveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		item, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Give what??")
		}
		if _, ok := cmdCtx.Noun2(); !ok {
			return NewUserError("Give to whom??")
		}

		if !cmdCtx.World.Has(game.ObjectId(item)) {
			return NewUserErrorf("You can't give a %s, as you don't have one!", item)
		}

		return NewPendingError("Don't be ridiculous!")
	}, nil
}
