package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned for a line with no words left after
// normalisation. Callers ignore it and prompt again.
var ErrEmptyInput = errors.New("empty input")

// Noun is an optional argument to a verb. The zero value is absent.
type Noun struct {
	word string
	ok   bool
}

// NounOf returns a present Noun.
func NounOf(word string) Noun {
	return Noun{word: word, ok: true}
}

// Get returns the noun's word and whether it was given.
func (n Noun) Get() (string, bool) {
	return n.word, n.ok
}

// Present reports whether the noun was given.
func (n Noun) Present() bool {
	return n.ok
}

// Equal reports whether both nouns are absent or both hold the same word.
func (n Noun) Equal(o Noun) bool {
	return n == o
}

func (n Noun) String() string {
	if !n.ok {
		return "<absent>"
	}
	return n.word
}

// Command is a resolved line of input.
type Command struct {
	Verb  Verb
	Word  string // the word the player used for the verb
	Noun1 Noun
	Noun2 Noun
}

func (c Command) String() string {
	return fmt.Sprintf("%s(%s, %s)", c.Verb, c.Noun1, c.Noun2)
}

// Resolve maps normalised words to a Command. The first word is the verb and
// up to two more are its nouns; anything after that is ignored. A direction
// word used as the verb ("north") becomes VerbGo with the direction as its
// first noun. An unrecognised verb resolves to VerbUnknown rather than an
// error so the executor can explain itself.
func Resolve(words []string) (Command, error) {
	if len(words) == 0 {
		return Command{}, ErrEmptyInput
	}

	cmd := Command{Word: words[0]}
	nouns := words[1:]

	verb, _ := Lookup(cmd.Word)
	cmd.Verb = verb
	if _, ok := synonyms[cmd.Word]; !ok && verb == VerbGo {
		nouns = words
	}

	if len(nouns) > 0 {
		cmd.Noun1 = NounOf(nouns[0])
	}
	if len(nouns) > 1 {
		cmd.Noun2 = NounOf(nouns[1])
	}

	return cmd, nil
}

// Parse tokenizes and resolves a raw line.
func Parse(line string) (Command, error) {
	return Resolve(Tokenize(line))
}
