package game

import (
	"maps"
	"slices"
	"strings"
)

// Direction is one of the fixed set of ways out of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
	In
	Out
)

var directionNames = [...]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
	Up:    "up",
	Down:  "down",
	In:    "in",
	Out:   "out",
}

// directionWords maps every word a player may use for a direction.
var directionWords = map[string]Direction{
	"north":   North,
	"n":       North,
	"south":   South,
	"s":       South,
	"east":    East,
	"e":       East,
	"west":    West,
	"w":       West,
	"up":      Up,
	"u":       Up,
	"down":    Down,
	"d":       Down,
	"in":      In,
	"inside":  In,
	"out":     Out,
	"outside": Out,
}

// Directions returns every direction in declaration order.
func Directions() []Direction {
	return []Direction{North, South, East, West, Up, Down, In, Out}
}

// ParseDirection maps a lowercase direction word to a Direction.
func ParseDirection(word string) (Direction, bool) {
	d, ok := directionWords[word]
	return d, ok
}

// DirectionWords returns all recognised direction words, sorted.
func DirectionWords() []string {
	return slices.Sorted(maps.Keys(directionWords))
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

func (d *Direction) UnmarshalText(text []byte) error {
	dir, ok := ParseDirection(strings.ToLower(string(text)))
	if !ok {
		return &UnknownDirectionError{Word: string(text)}
	}
	*d = dir
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
