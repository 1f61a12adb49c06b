package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-errors"
)

// NatsConfig controls the embedded broker that session transcripts are
// published to. Audit logs every published turn; ServerLogs passes the
// broker's own logs through at debug level.
type NatsConfig struct {
	Enabled      bool   `json:"enabled"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
	Audit        bool   `json:"audit"`
	ServerLogs   bool   `json:"server_logs"`
}

func (n *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if n.StartTimeout != "" {
		_, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("nats: parsing start_timeout: %w", err))
		}
	}
	if n.Port < 0 || n.Port > 65535 {
		el.Add(fmt.Errorf("nats: port %d out of range", n.Port))
	}
	if n.Audit && !n.Enabled {
		el.Add(fmt.Errorf("nats: audit requires nats to be enabled"))
	}

	return el.Err()
}

func (c *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	var opts []messaging.ServerOption
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}
	if c.ServerLogs {
		opts = append(opts, messaging.WithServerLogs())
	}

	s, err := messaging.NewNatsServer(opts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}
