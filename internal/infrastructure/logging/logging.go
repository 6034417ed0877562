// Package logging builds the structured logger shared by the runtime.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the runtime logger
const Prefix = "pewpew"

// New returns a logger writing to w at the given level
// (debug, info, warn or error). A nil w writes to stderr.
func New(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return l, nil
}

// ParseLevel parses a level name. An empty name means info.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("failed to parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// Discard returns a logger that drops everything, for tests
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
