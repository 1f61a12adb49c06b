// Package content carries the default adventure as embedded JSON assets and
// assembles asset stores into a game.Dictionary.
package content

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// DefaultScenario is the id of the embedded adventure.
const DefaultScenario storage.Identifier = "castle"

//go:embed assets
var assets embed.FS

// Paths holds optional directories overriding the embedded content. An empty
// path means the embedded assets of that kind are used.
type Paths struct {
	Rooms     string
	Objects   string
	Scenarios string
}

// Load builds a resolved Dictionary from the embedded assets and any
// overriding directories.
func Load(p Paths) (*game.Dictionary, error) {
	rooms, err := newStore[*game.Room](p.Rooms, "assets/rooms")
	if err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}

	objects, err := newStore[*game.Object](p.Objects, "assets/objects")
	if err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}

	scenarios, err := newStore[*game.Scenario](p.Scenarios, "assets/scenarios")
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}

	dict := &game.Dictionary{
		Rooms:     rooms,
		Objects:   objects,
		Scenarios: scenarios,
	}
	if err := dict.Resolve(); err != nil {
		return nil, game.ErrInvalidContent("dictionary", err)
	}

	return dict, nil
}

func newStore[T storage.ValidatingSpec](dir, embedded string) (storage.Storer[T], error) {
	var (
		st  *storage.FileStore[T]
		err error
	)
	if dir == "" {
		st, err = storage.NewFSStore[T](assets, embedded)
	} else {
		slog.Info("loading assets from directory", "path", dir)
		st, err = storage.NewFileStore[T](dir)
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}
