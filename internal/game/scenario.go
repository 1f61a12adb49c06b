package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Flag is a piece of puzzle progress.
type Flag string

const (
	FlagFoundKey Flag = "found-key"
)

// Messages are the authored texts used by command handlers. Any empty field
// falls back to DefaultMessages. Fields may be templates.
type Messages struct {
	Intro         string `json:"intro,omitempty"`
	Help          string `json:"help,omitempty"`
	Goodbye       string `json:"goodbye,omitempty"`
	Win           string `json:"win,omitempty"`
	KeyFound      string `json:"key_found,omitempty"`
	Swim          string `json:"swim,omitempty"`
	NowhereToSwim string `json:"nowhere_to_swim,omitempty"`
	AttackArmed   string `json:"attack_armed,omitempty"`
	AttackUnarmed string `json:"attack_unarmed,omitempty"`
}

// DefaultMessages are used for any message a scenario leaves out. Help is
// left empty so the command handler can list the vocabulary instead.
var DefaultMessages = Messages{
	Intro:         "Welcome.....",
	Goodbye:       "Goodbye!",
	Win:           "Congratulations, you have won!",
	KeyFound:      "You dive into the water and find a {{ .Item }} at the bottom!",
	Swim:          "You swim around for a while. The water is refreshing.",
	NowhereToSwim: "There is nowhere to swim here.",
	AttackArmed:   "You swing the {{ .Item }} at the {{ .Noun }}, but it has no effect.",
	AttackUnarmed: "You attack the {{ .Noun }} with your bare hands. It doesn't notice.",
}

// WithDefaults returns m with every empty field filled from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&m.Intro, DefaultMessages.Intro)
	fill(&m.Help, DefaultMessages.Help)
	fill(&m.Goodbye, DefaultMessages.Goodbye)
	fill(&m.Win, DefaultMessages.Win)
	fill(&m.KeyFound, DefaultMessages.KeyFound)
	fill(&m.Swim, DefaultMessages.Swim)
	fill(&m.NowhereToSwim, DefaultMessages.NowhereToSwim)
	fill(&m.AttackArmed, DefaultMessages.AttackArmed)
	fill(&m.AttackUnarmed, DefaultMessages.AttackUnarmed)
	return m
}

// Scenario ties rooms and objects into a playable adventure: where the player
// starts, what they carry and which objects and rooms the puzzles use.
type Scenario struct {
	Title        string                         `json:"title,omitempty"`
	StartRoom    storage.SmartIdentifier[*Room] `json:"start_room"`
	Inventory    []ObjectId                     `json:"inventory,omitempty"`
	WinObject    ObjectId                       `json:"win_object"`
	WeaponObject ObjectId                       `json:"weapon_object,omitempty"`
	WaterRoom    RoomId                         `json:"water_room,omitempty"`
	KeyObject    ObjectId                       `json:"key_object,omitempty"`
	SwimRefusals map[RoomId]string              `json:"swim_refusals,omitempty"`
	Messages     Messages                       `json:"messages"`
}

// Selector is the scenario's name in a list of choices.
func (s *Scenario) Selector() string {
	return s.Title
}

// Validate satisfies storage.ValidatingSpec.
func (s *Scenario) Validate() error {
	el := errors.NewErrorList()

	el.Add(s.StartRoom.Validate())
	if s.WinObject == "" {
		el.Add(fmt.Errorf("win_object is required"))
	}
	if (s.WaterRoom == "") != (s.KeyObject == "") {
		el.Add(fmt.Errorf("water_room and key_object must be set together"))
	}

	return el.Err()
}

// Resolve checks the scenario's references against the other stores.
func (s *Scenario) Resolve(d *Dictionary) error {
	el := errors.NewErrorList()

	if err := s.StartRoom.Resolve(d.Rooms); err != nil {
		el.Add(fmt.Errorf("start_room: %w", err))
	}

	objects := append([]ObjectId{s.WinObject, s.WeaponObject, s.KeyObject}, s.Inventory...)
	for _, id := range objects {
		if id != "" && d.Objects.Get(storage.Identifier(id)) == nil {
			el.Add(fmt.Errorf("object %q not found", id))
		}
	}

	rooms := []RoomId{s.WaterRoom}
	for id := range s.SwimRefusals {
		rooms = append(rooms, id)
	}
	for _, id := range rooms {
		if id != "" && d.Rooms.Get(storage.Identifier(id)) == nil {
			el.Add(fmt.Errorf("room %q not found", id))
		}
	}

	return el.Err()
}
