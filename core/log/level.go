package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel converts a user supplied level name (trace/debug/info/warn/warning/error) into an 'slog.Level'.
//
// NOTE: Trace is more verbose than debug, and is represented as 'slog.LevelDebug-4'.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("unknown log level '%s'", s)
}

// LevelTrace includes finer grained informational events than debug level.
const LevelTrace = slog.LevelDebug - 4
