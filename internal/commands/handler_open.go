package commands

import (
	"context"
)

// OpenHandlerFactory creates handlers for opening things. Nothing can be
// opened yet; locked exits open themselves once their condition holds.
type OpenHandlerFactory struct{}

func NewOpenHandlerFactory() *OpenHandlerFactory {
	return &OpenHandlerFactory{}
}

func (f *OpenHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		noun, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Open what??")
		}
		return NewPendingError("You can't open the " + noun + ".")
	}, nil
}
