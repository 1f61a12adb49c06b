package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-errors"
)

// State is the session state of a World. Only StatePlaying accepts commands.
type State int

const (
	StatePlaying State = iota
	StateQuit
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	case StateWon:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further commands may be accepted.
func (s State) Terminal() bool {
	return s != StatePlaying
}

// World is all mutable state of one adventure session. It has a single owner
// (the session loop) and is not safe for concurrent use.
type World struct {
	rooms     map[RoomId]*RoomInstance
	objects   map[ObjectId]*Object
	scenario  *Scenario
	messages  Messages
	current   RoomId
	inventory *Inventory
	state     State
	flags     map[Flag]bool
}

// NewWorld builds a World from authored content. It checks the invariants the
// rest of the package relies on: the start room and every exit destination
// exist, every referenced object is in the catalog and no object starts in
// more than one place.
func NewWorld(rooms map[RoomId]*Room, objects map[ObjectId]*Object, scenario *Scenario) (*World, error) {
	if scenario == nil {
		return nil, ErrInvalidContent("scenario", fmt.Errorf("scenario is required"))
	}

	w := &World{
		rooms:     make(map[RoomId]*RoomInstance, len(rooms)),
		objects:   objects,
		scenario:  scenario,
		messages:  scenario.Messages.WithDefaults(),
		current:   RoomId(scenario.StartRoom.Id()),
		inventory: NewObjectSet(),
		flags:     make(map[Flag]bool),
	}

	el := errors.NewErrorList()
	placed := make(map[ObjectId]string)
	place := func(id ObjectId, where string) {
		if _, ok := objects[id]; !ok {
			el.Add(fmt.Errorf("%s: object %q not found", where, id))
			return
		}
		if prev, ok := placed[id]; ok {
			el.Add(fmt.Errorf("object %q placed in both %s and %s", id, prev, where))
			return
		}
		placed[id] = where
	}

	for _, id := range slices.Sorted(maps.Keys(rooms)) {
		ri, err := newRoomInstance(id, rooms[id])
		if err != nil {
			el.Add(fmt.Errorf("room %s: %w", id, err))
			continue
		}
		for _, obj := range ri.Objects.Sorted() {
			place(obj, fmt.Sprintf("room %s", id))
		}
		w.rooms[id] = ri
	}

	for _, ri := range w.rooms {
		for _, exit := range ri.Exits() {
			if _, ok := rooms[exit.Destination]; !ok {
				el.Add(ErrUnknownDestination(ri.Id, exit.Direction, exit.Destination))
			}
			for _, id := range []ObjectId{exit.Lock.Item, exit.Lock.Obstacle} {
				if _, ok := objects[id]; id != "" && !ok {
					el.Add(fmt.Errorf("room %s: exit %s: object %q not found", ri.Id, exit.Direction, id))
				}
			}
		}
	}

	for _, id := range scenario.Inventory {
		place(id, "inventory")
		w.inventory.Add(id)
	}

	if _, ok := rooms[w.current]; !ok {
		el.Add(fmt.Errorf("start room %q not found", w.current))
	}
	if _, ok := objects[scenario.WinObject]; !ok {
		el.Add(fmt.Errorf("win object %q not found", scenario.WinObject))
	}
	if id := scenario.WeaponObject; id != "" {
		if _, ok := objects[id]; !ok {
			el.Add(fmt.Errorf("weapon object %q not found", id))
		}
	}
	if id := scenario.KeyObject; id != "" {
		if _, ok := objects[id]; !ok {
			el.Add(fmt.Errorf("key object %q not found", id))
		} else if where, ok := placed[id]; ok {
			el.Add(fmt.Errorf("key object %q must not be placed, found in %s", id, where))
		}
	}
	if id := scenario.WaterRoom; id != "" {
		if _, ok := rooms[id]; !ok {
			el.Add(fmt.Errorf("water room %q not found", id))
		}
	}
	if (scenario.WaterRoom == "") != (scenario.KeyObject == "") {
		el.Add(fmt.Errorf("water_room and key_object must be set together"))
	}

	if err := el.Err(); err != nil {
		return nil, ErrInvalidContent("world", err)
	}

	return w, nil
}

// Scenario returns the scenario the world was built from.
func (w *World) Scenario() *Scenario {
	return w.scenario
}

// Messages returns the scenario messages with defaults applied.
func (w *World) Messages() Messages {
	return w.messages
}

// Current returns the player's location.
func (w *World) Current() RoomId {
	return w.current
}

// CurrentRoom returns the player's location. An error means the world
// invariant is broken and the session must end.
func (w *World) CurrentRoom() (*RoomInstance, error) {
	ri, ok := w.rooms[w.current]
	if !ok {
		return nil, ErrInvalidLocation(w.current)
	}
	return ri, nil
}

// Room returns the room with the given id.
func (w *World) Room(id RoomId) (*RoomInstance, bool) {
	ri, ok := w.rooms[id]
	return ri, ok
}

// HasRoom reports whether id is a key of the room map.
func (w *World) HasRoom(id RoomId) bool {
	_, ok := w.rooms[id]
	return ok
}

// Object returns the catalog entry for id.
func (w *World) Object(id ObjectId) (*Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// ExitLock returns the lock on the exit leading dir from room, or a
// LockImpassable lock when there is no such exit.
func (w *World) ExitLock(room RoomId, dir Direction) Lock {
	ri, ok := w.rooms[room]
	if !ok {
		return Lock{Kind: LockImpassable}
	}
	exit, ok := ri.Exit(dir)
	if !ok {
		return Lock{Kind: LockImpassable}
	}
	return exit.Lock
}

// Destination returns where the exit leading dir from room goes, whether or
// not it is currently locked.
func (w *World) Destination(room RoomId, dir Direction) (RoomId, bool) {
	ri, ok := w.rooms[room]
	if !ok {
		return "", false
	}
	exit, ok := ri.Exit(dir)
	if !ok {
		return "", false
	}
	return exit.Destination, true
}

// MoveTo sets the player's location. Callers must already have checked the
// exit's lock and that room exists.
func (w *World) MoveTo(room RoomId) {
	w.current = room
}

// Take moves item from room into the inventory. Returns false, without
// changing anything, if item is not in room.
func (w *World) Take(room RoomId, item ObjectId) bool {
	ri, ok := w.rooms[room]
	if !ok || !ri.Objects.Remove(item) {
		return false
	}
	w.inventory.Add(item)
	return true
}

// Drop moves item from the inventory into the current room. Returns false,
// without changing anything, if item is not carried.
func (w *World) Drop(item ObjectId) bool {
	ri, ok := w.rooms[w.current]
	if !ok || !w.inventory.Remove(item) {
		return false
	}
	ri.Objects.Add(item)
	return true
}

// Grant puts an object that is nowhere in the world into the inventory, as
// when a puzzle reveals it. Returns false if item is unknown or already
// placed somewhere.
func (w *World) Grant(item ObjectId) bool {
	if _, ok := w.objects[item]; !ok || w.inventory.Contains(item) {
		return false
	}
	for _, ri := range w.rooms {
		if ri.Objects.Contains(item) {
			return false
		}
	}
	return w.inventory.Add(item)
}

// Has reports whether the player carries item.
func (w *World) Has(item ObjectId) bool {
	return w.inventory.Contains(item)
}

// Inventory returns the carried objects in lexical order.
func (w *World) Inventory() []ObjectId {
	return w.inventory.Sorted()
}

// RoomHas reports whether item is in room.
func (w *World) RoomHas(room RoomId, item ObjectId) bool {
	ri, ok := w.rooms[room]
	return ok && ri.Objects.Contains(item)
}

// Describe returns the description of room followed by one line per object
// present.
func (w *World) Describe(room RoomId) ([]string, error) {
	ri, ok := w.rooms[room]
	if !ok {
		return nil, ErrInvalidLocation(room)
	}

	lines := []string{ri.Description}
	for _, obj := range ri.Objects.Sorted() {
		lines = append(lines, fmt.Sprintf("There is a %s here.", obj))
	}
	return lines, nil
}

// State returns the session state.
func (w *World) State() State {
	return w.state
}

// End moves the world into a terminal state. It has no effect once the world
// has already ended.
func (w *World) End(s State) {
	if w.state.Terminal() || !s.Terminal() {
		return
	}
	w.state = s
}

// Flag reports whether a puzzle flag is set.
func (w *World) Flag(f Flag) bool {
	return w.flags[f]
}

// SetFlag records puzzle progress.
func (w *World) SetFlag(f Flag) {
	w.flags[f] = true
}
