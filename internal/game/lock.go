package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// LockKind classifies whether an exit may currently be traversed.
type LockKind int

const (
	LockFree LockKind = iota
	// LockImpassable means there is no exit at all. It is never authored;
	// World.ExitLock returns it for directions without an exit.
	LockImpassable
	LockRequiresItem
	LockBlockedByObstacle
	LockRequiresPassword
)

func (k LockKind) String() string {
	switch k {
	case LockFree:
		return "free"
	case LockImpassable:
		return "impassable"
	case LockRequiresItem:
		return "item"
	case LockBlockedByObstacle:
		return "obstacle"
	case LockRequiresPassword:
		return "password"
	default:
		return fmt.Sprintf("LockKind(%d)", int(k))
	}
}

func (k *LockKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "free":
		*k = LockFree
	case "item":
		*k = LockRequiresItem
	case "obstacle":
		*k = LockBlockedByObstacle
	case "password":
		*k = LockRequiresPassword
	default:
		return fmt.Errorf("unknown lock kind: %s", text)
	}
	return nil
}

func (k LockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Lock describes what stands between the player and an exit's destination.
// Item is only meaningful for LockRequiresItem and Obstacle only for
// LockBlockedByObstacle. Message is an optional template shown when the lock
// holds; an empty Message falls back to the default for the kind.
type Lock struct {
	Kind     LockKind `json:"kind"`
	Item     ObjectId `json:"item,omitempty"`
	Obstacle ObjectId `json:"obstacle,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// FreeLock is the lock of an exit authored without one.
var FreeLock = Lock{Kind: LockFree}

func (l *Lock) Validate() error {
	el := errors.NewErrorList()

	switch l.Kind {
	case LockImpassable:
		el.Add(fmt.Errorf("lock kind impassable cannot be authored, omit the exit instead"))
	case LockRequiresItem:
		if l.Item == "" {
			el.Add(fmt.Errorf("item lock requires an item"))
		}
	case LockBlockedByObstacle:
		if l.Obstacle == "" {
			el.Add(fmt.Errorf("obstacle lock requires an obstacle"))
		}
	}

	return el.Err()
}

// Exit is a directed, possibly locked connection to another room.
type Exit struct {
	Direction   Direction
	Destination RoomId
	Lock        Lock
}
