package commands

import (
	"context"
)

// AttackHandlerFactory creates handlers for attacking things. The response
// depends on whether the player holds the scenario's weapon.
type AttackHandlerFactory struct{}

func NewAttackHandlerFactory() *AttackHandlerFactory {
	return &AttackHandlerFactory{}
}

func (f *AttackHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if _, ok := cmdCtx.Noun1(); !ok {
			return NewUserError("Attack what??")
		}

		w := cmdCtx.World
		data := cmdCtx.data()
		name, tmpl := "attack_unarmed", w.Messages().AttackUnarmed
		if weapon := w.Scenario().WeaponObject; weapon != "" && w.Has(weapon) {
			data.Item = weapon.String()
			name, tmpl = "attack_armed", w.Messages().AttackArmed
		}

		msg, err := expandMessage(name, tmpl, data)
		if err != nil {
			return err
		}
		cmdCtx.Print(msg)
		return nil
	}, nil
}
