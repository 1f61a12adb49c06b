package game

import (
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
)

func exitTo(room string) ExitSpec {
	return ExitSpec{Room: storage.NewSmartIdentifier[*Room](room)}
}

func lockedExitTo(room string, lock Lock) ExitSpec {
	return ExitSpec{Room: storage.NewSmartIdentifier[*Room](room), Lock: &lock}
}

// testContent is a small map: a field with a path north to a locked shed
// and a pond east.
func testContent() (map[RoomId]*Room, map[ObjectId]*Object, *Scenario) {
	rooms := map[RoomId]*Room{
		"field": {
			Description: "You are in a field.",
			Objects:     []ObjectId{"stone"},
			Exits: map[string]ExitSpec{
				"north": exitTo("path"),
				"east":  exitTo("pond"),
			},
		},
		"path": {
			Description: "You are on a path.",
			Exits: map[string]ExitSpec{
				"s":  exitTo("field"),
				"in": lockedExitTo("shed", Lock{Kind: LockRequiresItem, Item: "key"}),
				"up": lockedExitTo("tree", Lock{Kind: LockBlockedByObstacle, Obstacle: "bees"}),
			},
			Objects: []ObjectId{"bees"},
		},
		"shed": {
			Description: "You are in a shed.",
			Objects:     []ObjectId{"treasure"},
			Exits: map[string]ExitSpec{
				"out": exitTo("path"),
			},
		},
		"tree": {
			Description: "You are up a tree.",
			Exits: map[string]ExitSpec{
				"down": exitTo("path"),
			},
		},
		"pond": {
			Description: "You are beside a pond.",
			Exits: map[string]ExitSpec{
				"west": exitTo("field"),
			},
		},
	}

	objects := map[ObjectId]*Object{
		"stone":    {Description: "A smooth stone."},
		"key":      {Description: "A brass key."},
		"bees":     {Description: "An angry swarm.", Unobtainable: "The bees would sting you."},
		"treasure": {Description: "A chest of gold."},
		"lamp":     {Description: "An oil lamp."},
	}

	scenario := &Scenario{
		StartRoom: storage.NewSmartIdentifier[*Room]("field"),
		Inventory: []ObjectId{"lamp"},
		WinObject: "treasure",
		WaterRoom: "pond",
		KeyObject: "key",
	}

	return rooms, objects, scenario
}

func newTestWorld(t *testing.T) *World {
	t.Helper()

	w, err := NewWorld(testContent())
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	return w
}
