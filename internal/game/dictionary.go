package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
)

// Dictionary holds all authored content stores. It provides a single
// reference that can be passed to resolution methods so they all share the
// same signature.
type Dictionary struct {
	Rooms     storage.Storer[*Room]
	Objects   storage.Storer[*Object]
	Scenarios storage.Storer[*Scenario]
}

// Resolve resolves all references between assets.
func (d *Dictionary) Resolve() error {
	for id, room := range d.Rooms.GetAll() {
		if err := room.Resolve(d); err != nil {
			return fmt.Errorf("room %s: %w", id, err)
		}
	}

	for id, scenario := range d.Scenarios.GetAll() {
		if err := scenario.Resolve(d); err != nil {
			return fmt.Errorf("scenario %s: %w", id, err)
		}
	}
	return nil
}

// NewWorld builds a fresh World for the named scenario. Every session gets its
// own World; the Dictionary itself is never mutated by play.
func (d *Dictionary) NewWorld(scenario storage.Identifier) (*World, error) {
	s := d.Scenarios.Get(scenario)
	if s == nil {
		return nil, ErrInvalidContent("scenario", fmt.Errorf("scenario %q not found", scenario))
	}

	rooms := make(map[RoomId]*Room)
	for id, r := range d.Rooms.GetAll() {
		rooms[RoomId(id)] = r
	}

	objects := make(map[ObjectId]*Object)
	for id, o := range d.Objects.GetAll() {
		objects[ObjectId(id)] = o
	}

	return NewWorld(rooms, objects, s)
}
