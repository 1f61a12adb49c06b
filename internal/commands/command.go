// Package commands executes resolved commands against a World: one handler
// per canonical verb, each checking its preconditions before touching any
// state.
package commands

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
)

// CommandContext is everything a handler sees for one turn: the session's
// world, the resolved command and the output collected so far.
type CommandContext struct {
	World   *game.World
	Command parser.Command

	lines []string
}

// NewCommandContext creates a context for executing cmd against w.
func NewCommandContext(w *game.World, cmd parser.Command) *CommandContext {
	return &CommandContext{World: w, Command: cmd}
}

// Print appends a line of output.
func (c *CommandContext) Print(lines ...string) {
	c.lines = append(c.lines, lines...)
}

// Printf appends a formatted line of output.
func (c *CommandContext) Printf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

// Lines returns the output collected so far.
func (c *CommandContext) Lines() []string {
	return c.lines
}

// Noun1 returns the first noun, if any.
func (c *CommandContext) Noun1() (string, bool) {
	return c.Command.Noun1.Get()
}

// Noun2 returns the second noun, if any.
func (c *CommandContext) Noun2() (string, bool) {
	return c.Command.Noun2.Get()
}

// data returns template data with the first noun filled in.
func (c *CommandContext) data() *TemplateData {
	noun, _ := c.Noun1()
	return &TemplateData{Noun: noun}
}
