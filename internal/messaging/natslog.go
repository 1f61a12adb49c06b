package messaging

import (
	"fmt"
	"log/slog"
)

// slogAdapter satisfies the nats-server logger with a slog.Logger. Notices
// and debug output from the broker are only interesting when debugging, so
// both land at debug level.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Noticef(format string, v ...any) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Warnf(format string, v ...any) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Fatalf(format string, v ...any) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Errorf(format string, v ...any) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Debugf(format string, v ...any) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

func (a slogAdapter) Tracef(format string, v ...any) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}
