package logevent

import (
	"log/slog"
	"strings"
)

// Level is the ordinal severity stored with every log event.
type Level int

const (
	LevelDebug Level = 0
	LevelInfo  Level = 1
	LevelWarn  Level = 2
	LevelError Level = 3
)

const (
	MinLevel = LevelDebug
	MaxLevel = LevelError
)

// slogThresholds is ordered from most to least severe; the first threshold a
// record reaches decides its ordinal.
var slogThresholds = []struct {
	threshold slog.Level
	level     Level
}{
	{slog.LevelError, LevelError},
	{slog.LevelWarn, LevelWarn},
	{slog.LevelInfo, LevelInfo},
	{slog.LevelDebug, LevelDebug},
}

var namedLevels = map[string]slog.Level{
	"CRITICAL": slog.LevelError + 4,
	"FATAL":    slog.LevelError + 4,
	"ERROR":    slog.LevelError,
	"WARNING":  slog.LevelWarn,
	"WARN":     slog.LevelWarn,
	"INFO":     slog.LevelInfo,
	"DEBUG":    slog.LevelDebug,
}

// FromSlog maps a slog level onto the ordinal scale. Levels below debug map to debug.
func FromSlog(l slog.Level) Level {
	for _, t := range slogThresholds {
		if l >= t.threshold {
			return t.level
		}
	}
	return LevelDebug
}

// ParseLevel maps a named level such as "WARNING" onto the ordinal scale.
func ParseLevel(name string) (Level, bool) {
	l, ok := namedLevels[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return LevelDebug, false
	}
	return FromSlog(l), true
}

func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
