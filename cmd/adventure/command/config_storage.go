package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/content"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
)

// StorageConfig points at directories overriding the embedded adventure.
// Each kind left empty uses the embedded assets.
type StorageConfig struct {
	Rooms     AssetConfig `json:"rooms"`
	Objects   AssetConfig `json:"objects"`
	Scenarios AssetConfig `json:"scenarios"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.validate("rooms"))
	el.Add(c.Objects.validate("objects"))
	el.Add(c.Scenarios.validate("scenarios"))
	return el.Err()
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	return content.Load(content.Paths{
		Rooms:     c.Rooms.Path,
		Objects:   c.Objects.Path,
		Scenarios: c.Scenarios.Path,
	})
}

type AssetConfig struct {
	Path string `json:"path"`
}

func (c *AssetConfig) validate(name string) error {
	if c.Path == "" {
		return nil
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: path %q is not a directory", name, c.Path)
	}
	return nil
}
