// Package parser turns a raw line of player input into a Command.
package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopWords are dropped from input entirely.
var stopWords = map[string]struct{}{
	"a":   {},
	"an":  {},
	"the": {},
	"to":  {},
}

// Tokenize splits line on whitespace, lowercases each word one character at
// a time with full Unicode case mapping and drops stop words. Characters
// whose lowercase form is several code points keep all of them, and no
// context rules (such as the Greek final sigma) apply. A line with nothing
// left yields an empty slice.
func Tokenize(line string) []string {
	// A Caser keeps state and must not be shared between goroutines.
	lower := cases.Lower(language.Und)

	var words []string
	for _, field := range strings.Fields(line) {
		w := lowerEach(lower, field)
		if w == "" {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

func lowerEach(lower cases.Caser, word string) string {
	var b strings.Builder
	for _, r := range word {
		b.WriteString(lower.String(string(r)))
	}
	return b.String()
}
