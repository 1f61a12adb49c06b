package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// RoomId identifies a room. The set of rooms is fixed by the authored content.
type RoomId string

func (id RoomId) String() string {
	return string(id)
}

// ExitSpec is an authored exit. A nil Lock means the exit is always passable.
type ExitSpec struct {
	Room storage.SmartIdentifier[*Room] `json:"room"`
	Lock *Lock                          `json:"lock,omitempty"`
}

// Room is the authored, immutable definition of a location.
type Room struct {
	Description string              `json:"description"`
	Objects     []ObjectId          `json:"objects,omitempty"` // initial placement
	Exits       map[string]ExitSpec `json:"exits,omitempty"`   // direction word -> exit
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for word, exit := range r.Exits {
		if err := exit.Room.Validate(); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", word, err))
		}
		if exit.Lock != nil {
			if err := exit.Lock.Validate(); err != nil {
				el.Add(fmt.Errorf("exit %s: %w", word, err))
			}
		}
	}

	_, err := r.exitMap()
	el.Add(err)

	return el.Err()
}

// Resolve checks the room's references against the other stores.
func (r *Room) Resolve(d *Dictionary) error {
	el := errors.NewErrorList()

	for _, word := range sortedKeys(r.Exits) {
		exit := r.Exits[word]
		if err := exit.Room.Resolve(d.Rooms); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", word, err))
		}
		r.Exits[word] = exit

		if exit.Lock != nil {
			for _, id := range []ObjectId{exit.Lock.Item, exit.Lock.Obstacle} {
				if id != "" && d.Objects.Get(storage.Identifier(id)) == nil {
					el.Add(fmt.Errorf("exit %s: object %q not found", word, id))
				}
			}
		}
	}

	for _, id := range r.Objects {
		if d.Objects.Get(storage.Identifier(id)) == nil {
			el.Add(fmt.Errorf("object %q not found", id))
		}
	}

	return el.Err()
}

// exitMap converts the authored exits to one Exit per direction. Two words for
// the same direction (e.g. "n" and "north") are rejected rather than letting
// one silently win.
func (r *Room) exitMap() (map[Direction]Exit, error) {
	exits := make(map[Direction]Exit, len(r.Exits))
	words := make(map[Direction]string, len(r.Exits))

	for _, word := range sortedKeys(r.Exits) {
		spec := r.Exits[word]

		var dir Direction
		if err := dir.UnmarshalText([]byte(word)); err != nil {
			return nil, fmt.Errorf("exit %s: %w", word, err)
		}
		if prev, ok := words[dir]; ok {
			return nil, fmt.Errorf("exits %s and %s both lead %s", prev, word, dir)
		}
		words[dir] = word

		lock := FreeLock
		if spec.Lock != nil {
			lock = *spec.Lock
		}

		exits[dir] = Exit{
			Direction:   dir,
			Destination: RoomId(spec.Room.Id()),
			Lock:        lock,
		}
	}

	return exits, nil
}

// RoomInstance is a room as it exists during play: its authored definition
// plus the objects currently in it.
type RoomInstance struct {
	Id          RoomId
	Description string
	Objects     *ObjectSet

	exits map[Direction]Exit
}

func newRoomInstance(id RoomId, r *Room) (*RoomInstance, error) {
	exits, err := r.exitMap()
	if err != nil {
		return nil, err
	}

	return &RoomInstance{
		Id:          id,
		Description: r.Description,
		Objects:     NewObjectSet(r.Objects...),
		exits:       exits,
	}, nil
}

// Exit returns the exit leading dir, if any.
func (ri *RoomInstance) Exit(dir Direction) (Exit, bool) {
	e, ok := ri.exits[dir]
	return e, ok
}

// Exits returns the room's exits in direction order.
func (ri *RoomInstance) Exits() []Exit {
	exits := make([]Exit, 0, len(ri.exits))
	for _, dir := range Directions() {
		if e, ok := ri.exits[dir]; ok {
			exits = append(exits, e)
		}
	}
	return exits
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
