package game

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		word  string
		exp   Direction
		expOk bool
	}{
		"full word":   {word: "north", exp: North, expOk: true},
		"abbreviated": {word: "d", exp: Down, expOk: true},
		"inside":      {word: "inside", exp: In, expOk: true},
		"outside":     {word: "outside", exp: Out, expOk: true},
		"unknown":     {word: "sideways"},
		"uppercase":   {word: "NORTH"},
		"empty":       {word: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseDirection(tt.word)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			if ok {
				testutil.AssertEqual(t, "direction", got, tt.exp)
			}
		})
	}
}

func TestDirection_String(t *testing.T) {
	for _, d := range Directions() {
		back, ok := ParseDirection(d.String())
		if !ok || back != d {
			t.Errorf("direction %d does not round trip through %q", d, d.String())
		}
	}
	testutil.AssertEqual(t, "out of range", Direction(42).String(), "unknown")
}

func TestLock_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		raw    string
		exp    Lock
		expErr string
	}{
		"item lock": {
			raw: `{"kind":"item","item":"key","message":"Locked."}`,
			exp: Lock{Kind: LockRequiresItem, Item: "key", Message: "Locked."},
		},
		"obstacle lock": {
			raw: `{"kind":"obstacle","obstacle":"crocodile"}`,
			exp: Lock{Kind: LockBlockedByObstacle, Obstacle: "crocodile"},
		},
		"omitted kind is free": {
			raw: `{}`,
			exp: Lock{Kind: LockFree},
		},
		"unknown kind": {
			raw:    `{"kind":"riddle"}`,
			expErr: "unknown lock kind: riddle",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got Lock
			err := json.Unmarshal([]byte(tt.raw), &got)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "lock", got, tt.exp)
		})
	}
}

func TestLock_Validate(t *testing.T) {
	tests := map[string]struct {
		lock   Lock
		expErr string
	}{
		"free":              {lock: Lock{Kind: LockFree}},
		"password":          {lock: Lock{Kind: LockRequiresPassword}},
		"item without item": {lock: Lock{Kind: LockRequiresItem}, expErr: "item lock requires an item"},
		"obstacle without obstacle": {
			lock:   Lock{Kind: LockBlockedByObstacle},
			expErr: "obstacle lock requires an obstacle",
		},
		"impassable": {lock: Lock{Kind: LockImpassable}, expErr: "cannot be authored"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.lock.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
