package parser

import (
	"maps"
	"slices"

	"github.com/pixil98/go-adventure/internal/game"
)

// Verb is a canonical action. Many words map to one Verb.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbHelp
	VerbQuit
	VerbInventory
	VerbLook
	VerbGo
	VerbDrop
	VerbGet
	VerbGive
	VerbAttack
	VerbOpen
	VerbSwim
	VerbUse
)

var verbNames = map[Verb]string{
	VerbUnknown:   "unknown",
	VerbHelp:      "help",
	VerbQuit:      "quit",
	VerbInventory: "inventory",
	VerbLook:      "look",
	VerbGo:        "go",
	VerbDrop:      "drop",
	VerbGet:       "get",
	VerbGive:      "give",
	VerbAttack:    "attack",
	VerbOpen:      "open",
	VerbSwim:      "swim",
	VerbUse:       "use",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// synonyms maps every verb word to its canonical Verb. Adding a verb word is
// a change to this table only. Direction words are handled separately since
// they act as both a verb and its noun.
var synonyms = map[string]Verb{
	"help": VerbHelp,
	"h":    VerbHelp,
	"?":    VerbHelp,

	"exit": VerbQuit,
	"quit": VerbQuit,
	"q":    VerbQuit,

	"inventory": VerbInventory,
	"invent":    VerbInventory,
	"inv":       VerbInventory,
	"i":         VerbInventory,

	"look": VerbLook,
	"l":    VerbLook,

	"go":   VerbGo,
	"walk": VerbGo,

	"drop": VerbDrop,

	"get":  VerbGet,
	"take": VerbGet,

	"give":  VerbGive,
	"offer": VerbGive,
	"feed":  VerbGive,

	"attack": VerbAttack,
	"kill":   VerbAttack,
	"hit":    VerbAttack,
	"fight":  VerbAttack,

	"open":   VerbOpen,
	"unlock": VerbOpen,

	"swim": VerbSwim,
	"dive": VerbSwim,

	"use":   VerbUse,
	"apply": VerbUse,
}

// Lookup returns the Verb for a word. Direction words map to VerbGo.
func Lookup(word string) (Verb, bool) {
	if v, ok := synonyms[word]; ok {
		return v, true
	}
	if _, ok := game.ParseDirection(word); ok {
		return VerbGo, true
	}
	return VerbUnknown, false
}

// Vocabulary returns the canonical name of every known verb, sorted.
func Vocabulary() []string {
	seen := make(map[string]struct{})
	for _, v := range synonyms {
		seen[v.String()] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Synonyms returns every word that maps to v, sorted.
func Synonyms(v Verb) []string {
	var words []string
	for w, sv := range synonyms {
		if sv == v {
			words = append(words, w)
		}
	}
	slices.Sort(words)
	return words
}
