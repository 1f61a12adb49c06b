package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
)

// HelpHandlerFactory creates handlers that display help. A scenario's own
// help text replaces the generated command list.
type HelpHandlerFactory struct{}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory() *HelpHandlerFactory {
	return &HelpHandlerFactory{}
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	list := f.listCommands()

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if name, ok := cmdCtx.Noun1(); ok {
			return f.showCommand(cmdCtx, name)
		}

		if text := cmdCtx.World.Messages().Help; text != "" {
			cmdCtx.Print(strings.Split(text, "\n")...)
			return nil
		}

		cmdCtx.Print(list...)
		return nil
	}, nil
}

// listCommands lists every verb with its synonyms.
func (f *HelpHandlerFactory) listCommands() []string {
	lines := []string{"I understand the following commands:"}
	for _, name := range parser.Vocabulary() {
		verb, _ := parser.Lookup(name)
		lines = append(lines, fmt.Sprintf("  %s", strings.Join(parser.Synonyms(verb), ", ")))
	}
	lines = append(lines, fmt.Sprintf("Directions: %s", strings.Join(game.DirectionWords(), ", ")))
	return lines
}

// showCommand displays the words for a single verb.
func (f *HelpHandlerFactory) showCommand(cmdCtx *CommandContext, name string) error {
	verb, ok := parser.Lookup(name)
	if !ok {
		return NewUserErrorf("I don't know the command '%s'.", name)
	}

	cmdCtx.Printf("%s: %s", verb, strings.Join(parser.Synonyms(verb), ", "))
	return nil
}
