package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// SwimHandlerFactory creates handlers for swimming. The first swim in the
// scenario's water room turns up the key object; some rooms have their own
// refusal and everywhere else there is nowhere to swim.
type SwimHandlerFactory struct{}

func NewSwimHandlerFactory() *SwimHandlerFactory {
	return &SwimHandlerFactory{}
}

func (f *SwimHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		w := cmdCtx.World
		sc := w.Scenario()
		here := w.Current()

		if sc.WaterRoom != "" && here == sc.WaterRoom {
			if w.Flag(game.FlagFoundKey) {
				cmdCtx.Print(w.Messages().Swim)
				return nil
			}

			msg, err := expandMessage("key_found", w.Messages().KeyFound, &TemplateData{Item: sc.KeyObject.String()})
			if err != nil {
				return err
			}
			if !w.Grant(sc.KeyObject) {
				return fmt.Errorf("granting key object %q: already placed", sc.KeyObject)
			}
			w.SetFlag(game.FlagFoundKey)
			cmdCtx.Print(msg)
			return nil
		}

		if refusal, ok := sc.SwimRefusals[here]; ok {
			msg, err := expandMessage("swim refusal", refusal, cmdCtx.data())
			if err != nil {
				return err
			}
			return NewUserError(msg)
		}

		return NewUserError(w.Messages().NowhereToSwim)
	}, nil
}
