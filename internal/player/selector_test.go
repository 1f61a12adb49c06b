package player

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

type named string

func (n named) Selector() string { return string(n) }

func TestSelector(t *testing.T) {
	tests := map[string]struct {
		options map[storage.Identifier]named
		expRows []string
		selects map[int]storage.Identifier
	}{
		"sorted by id": {
			options: map[storage.Identifier]named{
				"b": "Beta",
				"a": "Alpha",
			},
			expRows: []string{" 1. Alpha", " 2. Beta"},
			selects: map[int]storage.Identifier{0: "", 1: "a", 2: "b", 3: ""},
		},
		"label falls back to id": {
			options: map[storage.Identifier]named{
				"castle": "",
			},
			expRows: []string{" 1. castle"},
			selects: map[int]storage.Identifier{1: "castle", -1: ""},
		},
		"fills columns after the default row count": {
			options: map[storage.Identifier]named{
				"a": "A", "b": "B", "c": "C", "d": "D", "e": "E", "f": "F",
			},
			expRows: []string{
				" 1. A     6. F",
				" 2. B",
				" 3. C",
				" 4. D",
				" 5. E",
			},
			selects: map[int]storage.Identifier{6: "f"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newSelector(tt.options)

			if !slices.Equal(s.Rows(), tt.expRows) {
				t.Errorf("rows = %q, expected %q", s.Rows(), tt.expRows)
			}
			for i, exp := range tt.selects {
				testutil.AssertEqual(t, "select", s.Select(i), exp)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logError(context.Background(), logger, "session failed", game.ErrInvalidLocation("nowhere"))

	out := buf.String()
	for _, s := range []string{"session failed", "code=INVALID_LOCATION", "nowhere"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output missing %q: %s", s, out)
		}
	}
}
