package parser

import (
	"errors"
	"slices"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestResolve(t *testing.T) {
	absent := Noun{}

	tests := map[string]struct {
		words  []string
		exp    Command
		expErr error
	}{
		"empty": {
			words:  nil,
			expErr: ErrEmptyInput,
		},
		"bare verb": {
			words: []string{"look"},
			exp:   Command{Verb: VerbLook, Word: "look", Noun1: absent, Noun2: absent},
		},
		"verb and noun": {
			words: []string{"take", "sword"},
			exp:   Command{Verb: VerbGet, Word: "take", Noun1: NounOf("sword")},
		},
		"verb and two nouns": {
			words: []string{"feed", "bone", "dog"},
			exp:   Command{Verb: VerbGive, Word: "feed", Noun1: NounOf("bone"), Noun2: NounOf("dog")},
		},
		"extra words ignored": {
			words: []string{"give", "bone", "dog", "now", "please"},
			exp:   Command{Verb: VerbGive, Word: "give", Noun1: NounOf("bone"), Noun2: NounOf("dog")},
		},
		"go with direction": {
			words: []string{"walk", "n"},
			exp:   Command{Verb: VerbGo, Word: "walk", Noun1: NounOf("n")},
		},
		"direction as verb": {
			words: []string{"north"},
			exp:   Command{Verb: VerbGo, Word: "north", Noun1: NounOf("north")},
		},
		"abbreviated direction as verb": {
			words: []string{"u"},
			exp:   Command{Verb: VerbGo, Word: "u", Noun1: NounOf("u")},
		},
		"direction as verb keeps following word": {
			words: []string{"south", "quickly"},
			exp:   Command{Verb: VerbGo, Word: "south", Noun1: NounOf("south"), Noun2: NounOf("quickly")},
		},
		"quit synonyms": {
			words: []string{"q"},
			exp:   Command{Verb: VerbQuit, Word: "q"},
		},
		"exit is quit, not a direction": {
			words: []string{"exit"},
			exp:   Command{Verb: VerbQuit, Word: "exit"},
		},
		"unknown verb": {
			words: []string{"dance", "wildly"},
			exp:   Command{Verb: VerbUnknown, Word: "dance", Noun1: NounOf("wildly")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(tt.words)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("error = %v, expected %v", err, tt.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "command", got, tt.exp)
		})
	}
}

func TestNoun(t *testing.T) {
	var absent Noun
	if _, ok := absent.Get(); ok {
		t.Error("zero noun reported as present")
	}
	testutil.AssertEqual(t, "absent string", absent.String(), "<absent>")

	n := NounOf("lamp")
	word, ok := n.Get()
	testutil.AssertEqual(t, "present", ok, true)
	testutil.AssertEqual(t, "word", word, "lamp")
}

func TestNoun_Equal(t *testing.T) {
	tests := map[string]struct {
		a   Noun
		b   Noun
		exp bool
	}{
		"both absent":          {a: Noun{}, b: Noun{}, exp: true},
		"same word":            {a: NounOf("lamp"), b: NounOf("lamp"), exp: true},
		"different words":      {a: NounOf("lamp"), b: NounOf("key"), exp: false},
		"absent vs present":    {a: Noun{}, b: NounOf("lamp"), exp: false},
		"absent vs empty word": {a: Noun{}, b: NounOf(""), exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "equal", tt.a.Equal(tt.b), tt.exp)
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("  Go THE North ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "command", got, Command{Verb: VerbGo, Word: "go", Noun1: NounOf("north")})

	_, err = Parse("the")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, expected ErrEmptyInput", err)
	}
}

func TestVocabulary(t *testing.T) {
	exp := []string{"attack", "drop", "get", "give", "go", "help", "inventory", "look", "open", "quit", "swim", "use"}
	if got := Vocabulary(); !slices.Equal(got, exp) {
		t.Errorf("Vocabulary() = %v, expected %v", got, exp)
	}

	if got := Synonyms(VerbQuit); !slices.Equal(got, []string{"exit", "q", "quit"}) {
		t.Errorf("Synonyms(VerbQuit) = %v", got)
	}
}
