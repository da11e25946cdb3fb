package log

import "log/slog"

// Level represents the severity of a log message
type Level int

const (
	// LevelDebug is for per-stage tracing during a pipeline run
	LevelDebug Level = iota
	// LevelInfo is for run lifecycle messages
	LevelInfo
	// LevelWarn is for conditions that degrade but do not abort a run
	LevelWarn
	// LevelError is for failures that abort a run
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ToSlogLevel converts our Level to slog.Level
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
