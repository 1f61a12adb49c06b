package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type Config struct {
	Log       LogConfig        `json:"log"`
	Storage   StorageConfig    `json:"storage"`
	Scenario  string           `json:"scenario"`
	WrapWidth int              `json:"wrap_width"`
	Listeners []ListenerConfig `json:"listeners"`
	Nats      NatsConfig       `json:"nats"`
	Metrics   MetricsConfig    `json:"metrics"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Log.validate())
	el.Add(c.Storage.validate())

	if c.Scenario != "" {
		if err := storage.Identifier(c.Scenario).Validate(); err != nil {
			el.Add(fmt.Errorf("scenario: %w", err))
		}
	}
	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("wrap_width must not be negative"))
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	consoles := 0
	for i, l := range c.Listeners {
		if err := l.validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
		if l.Protocol == ListenerTypeConsole {
			consoles++
		}
	}
	if consoles > 1 {
		el.Add(fmt.Errorf("only one console listener is allowed"))
	}

	el.Add(c.Nats.validate())
	el.Add(c.Metrics.validate())

	return el.Err()
}
