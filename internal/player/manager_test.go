package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/content"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"
)

// testConn reads scripted input and records everything written.
type testConn struct {
	io.Reader
	out bytes.Buffer
}

func newTestConn(lines ...string) *testConn {
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	return &testConn{Reader: strings.NewReader(input)}
}

func (c *testConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

type recordingPublisher struct {
	turns []messaging.Turn
}

func (p *recordingPublisher) PublishTurn(t messaging.Turn) error {
	p.turns = append(p.turns, t)
	return nil
}

func newTestManager(t *testing.T, paths content.Paths, scenario storage.Identifier, pub TurnPublisher) *Manager {
	t.Helper()

	dict, err := content.Load(paths)
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	h, err := commands.NewDefaultHandler()
	if err != nil {
		t.Fatalf("building handler: %v", err)
	}
	return NewManager(dict, scenario, h, pub)
}

func TestManager_RunSession(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := map[string]struct {
		input      []string
		expOut     []string
		expNotOut  []string
		expTurns   int
		expOutcome string
	}{
		"quit": {
			input:      []string{"look", "", "quit", "north"},
			expOut:     []string{"Welcome.....", "windswept mountain top", "> ", "Goodbye!"},
			expNotOut:  []string{"dense forest"},
			expTurns:   2,
			expOutcome: OutcomeQuit,
		},
		"end of input": {
			input:      []string{"north"},
			expOut:     []string{"dense forest"},
			expNotOut:  []string{"Goodbye!"},
			expTurns:   1,
			expOutcome: OutcomeDisconnected,
		},
		"no input": {
			expOut:     []string{"Welcome....."},
			expOutcome: OutcomeDisconnected,
		},
		"win": {
			input:      []string{"e", "swim", "n", "n", "get treasure", "look"},
			expOut:     []string{"Congratulations, you have won!"},
			expNotOut:  []string{"Goodbye!"},
			expTurns:   5,
			expOutcome: OutcomeWon,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pub := &recordingPublisher{}
			m := newTestManager(t, content.Paths{}, content.DefaultScenario, pub)
			conn := newTestConn(tt.input...)
			before := promtest.ToFloat64(SessionsTotal.WithLabelValues(tt.expOutcome))

			err := m.RunSession(context.Background(), conn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			out := conn.out.String()
			for _, s := range tt.expOut {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.expNotOut {
				if strings.Contains(out, s) {
					t.Errorf("output unexpectedly contains %q:\n%s", s, out)
				}
			}
			testutil.AssertEqual(t, "turns", len(pub.turns), tt.expTurns)
			for _, turn := range pub.turns {
				if turn.Session == "" {
					t.Errorf("turn %q has no session id", turn.Input)
				}
			}
			after := promtest.ToFloat64(SessionsTotal.WithLabelValues(tt.expOutcome))
			testutil.AssertEqual(t, "outcome count", after-before, 1.0)
		})
	}
}

func TestManager_RunSessionUnknownScenario(t *testing.T) {
	m := newTestManager(t, content.Paths{}, "missing", nil)

	err := m.RunSession(context.Background(), newTestConn("look"))
	testutil.AssertErrorContains(t, err, `scenario "missing" not found`)
}

func TestManager_RunSessionCanceled(t *testing.T) {
	m := newTestManager(t, content.Paths{}, content.DefaultScenario, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()
	conn := &testConn{Reader: r}

	if err := m.RunSession(ctx, conn); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestManager_ChooseScenario(t *testing.T) {
	dir := t.TempDir()
	castle, err := os.ReadFile(filepath.Join("..", "content", "assets", "scenarios", "castle.json"))
	if err != nil {
		t.Fatalf("reading castle: %v", err)
	}
	files := map[string]string{
		"castle.json": string(castle),
		"short.json":  `{"version":1,"id":"short","spec":{"title":"A Short Walk","start_room":"hall","win_object":"treasure"}}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	tests := map[string]struct {
		input     []string
		expOut    []string
		expErr    string
		expNotOut []string
	}{
		"choose second": {
			input:  []string{"2", "quit"},
			expOut: []string{"Choose your adventure:", " 1. The Castle", " 2. A Short Walk", "great hall", "Goodbye!"},
		},
		"invalid then valid": {
			input:  []string{"zero", "7", "1", "quit"},
			expOut: []string{"Invalid selection!", "windswept mountain top"},
		},
		"too many tries": {
			input:     []string{"a", "b", "c", "1"},
			expErr:    "no scenario chosen after 3 tries",
			expNotOut: []string{"Welcome....."},
		},
		"input ends": {
			input:     nil,
			expNotOut: []string{"Welcome....."},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t, content.Paths{Scenarios: dir}, "", nil)
			conn := newTestConn(tt.input...)

			err := m.RunSession(context.Background(), conn)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			out := conn.out.String()
			for _, s := range tt.expOut {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.expNotOut {
				if strings.Contains(out, s) {
					t.Errorf("output unexpectedly contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	tests := map[string]struct {
		state  game.State
		hungUp bool
		err    error
		exp    string
	}{
		"won":          {state: game.StateWon, exp: OutcomeWon},
		"quit":         {state: game.StateQuit, exp: OutcomeQuit},
		"hung up":      {state: game.StateQuit, hungUp: true, exp: OutcomeDisconnected},
		"canceled":     {state: game.StatePlaying, err: context.Canceled, exp: OutcomeDisconnected},
		"broken world": {state: game.StatePlaying, err: errors.New("boom"), exp: OutcomeError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "outcome", outcomeOf(tt.state, tt.hungUp, tt.err), tt.exp)
		})
	}
}
