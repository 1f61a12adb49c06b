package commands

import (
	"context"
)

// InventoryHandlerFactory creates handlers that list the player's inventory.
type InventoryHandlerFactory struct{}

func NewInventoryHandlerFactory() *InventoryHandlerFactory {
	return &InventoryHandlerFactory{}
}

func (f *InventoryHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		items := cmdCtx.World.Inventory()
		if len(items) == 0 {
			cmdCtx.Print("You are carrying nothing.")
			return nil
		}

		cmdCtx.Print("You are carrying:")
		for _, id := range items {
			cmdCtx.Printf("  a %s", id)
		}
		return nil
	}, nil
}
