package commands

import (
	"context"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/parser"
	"github.com/pixil98/go-adventure/internal/storage"
)

func exitTo(room string) game.ExitSpec {
	return game.ExitSpec{Room: storage.NewSmartIdentifier[*game.Room](room)}
}

func lockedExitTo(room string, lock game.Lock) game.ExitSpec {
	return game.ExitSpec{Room: storage.NewSmartIdentifier[*game.Room](room), Lock: &lock}
}

// testContent is a meadow with a gate to the north leading into a hall, a
// lake to the east and a tower up behind a barrier.
func testContent() (map[game.RoomId]*game.Room, map[game.ObjectId]*game.Object, *game.Scenario) {
	crocodile := game.Lock{
		Kind:     game.LockBlockedByObstacle,
		Obstacle: "crocodile",
		Message:  "The {{ .Obstacle }} snaps at you.",
	}

	rooms := map[game.RoomId]*game.Room{
		"meadow": {
			Description: "A sunny meadow.",
			Objects:     []game.ObjectId{"sword", "tree"},
			Exits: map[string]game.ExitSpec{
				"north": exitTo("gate"),
				"east":  exitTo("lake"),
				"up":    lockedExitTo("tower", game.Lock{Kind: game.LockRequiresPassword}),
			},
		},
		"lake": {
			Description: "The shore of a deep lake.",
			Exits: map[string]game.ExitSpec{
				"west": exitTo("meadow"),
			},
		},
		"gate": {
			Description: "You stand before a castle gate.",
			Exits: map[string]game.ExitSpec{
				"south": exitTo("meadow"),
				"in":    lockedExitTo("hall", game.Lock{Kind: game.LockRequiresItem, Item: "key"}),
			},
		},
		"hall": {
			Description: "A great hall.",
			Objects:     []game.ObjectId{"treasure", "crocodile"},
			Exits: map[string]game.ExitSpec{
				"out":  exitTo("gate"),
				"east": lockedExitTo("dungeon", crocodile),
			},
		},
		"dungeon": {
			Description: "A damp dungeon.",
			Exits: map[string]game.ExitSpec{
				"west": exitTo("hall"),
			},
		},
		"tower": {
			Description: "The top of the tower.",
			Exits: map[string]game.ExitSpec{
				"down": exitTo("meadow"),
			},
		},
	}

	objects := map[game.ObjectId]*game.Object{
		"sword":     {Description: "A sharp sword."},
		"tree":      {Description: "An old oak.", Unobtainable: "The {{ .Noun }} is rooted to the spot."},
		"lamp":      {Description: "An oil lamp."},
		"key":       {Description: "A golden key."},
		"treasure":  {Description: "A chest of gold."},
		"crocodile": {Description: "A hungry crocodile.", Unobtainable: "Are you mad?"},
	}

	scenario := &game.Scenario{
		StartRoom:    storage.NewSmartIdentifier[*game.Room]("meadow"),
		Inventory:    []game.ObjectId{"lamp"},
		WinObject:    "treasure",
		WeaponObject: "sword",
		WaterRoom:    "lake",
		KeyObject:    "key",
		SwimRefusals: map[game.RoomId]string{
			"gate": "You would sink in the moat.",
		},
	}

	return rooms, objects, scenario
}

func newTestWorld(t *testing.T) *game.World {
	t.Helper()

	w, err := game.NewWorld(testContent())
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	return w
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	h, err := NewDefaultHandler()
	if err != nil {
		t.Fatalf("building handler: %v", err)
	}
	return h
}

// play parses and executes each line in turn and returns the output of the
// last one.
func play(t *testing.T, h *Handler, w *game.World, lines ...string) []string {
	t.Helper()

	var out []string
	for _, line := range lines {
		cmd, err := parser.Parse(line)
		if err != nil {
			t.Fatalf("parsing %q: %v", line, err)
		}
		out, err = h.Exec(context.Background(), w, cmd)
		if err != nil {
			t.Fatalf("executing %q: %v", line, err)
		}
	}
	return out
}
