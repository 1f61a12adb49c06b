package commands

import (
	"context"
)

// LookHandlerFactory creates handlers that describe the current room. Look
// never changes the world.
type LookHandlerFactory struct{}

func NewLookHandlerFactory() *LookHandlerFactory {
	return &LookHandlerFactory{}
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		lines, err := cmdCtx.World.Describe(cmdCtx.World.Current())
		if err != nil {
			return err
		}
		cmdCtx.Print(lines...)
		return nil
	}, nil
}
