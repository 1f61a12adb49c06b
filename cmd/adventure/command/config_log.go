package command

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type LogConfig struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}

func (c *LogConfig) validate() error {
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Format)
	}

	if _, err := c.level(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (c *LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return lvl, err
	}
	return lvl, nil
}

// buildLogger creates the process logger writing to w. Logs default to
// json at info level.
func (c *LogConfig) buildLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if c.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With("service", "adventure"), nil
}
