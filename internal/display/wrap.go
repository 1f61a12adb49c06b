package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to width columns, preserving ANSI escape sequences
// and existing line breaks. A width of zero or less means DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// WrapLines wraps each response line on its own and joins the results.
// Leading indentation survives wrapping.
func WrapLines(lines []string, width int) string {
	return Wrap(strings.Join(lines, "\n"), width)
}
