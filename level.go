package logfan

import (
	"strconv"

	"github.com/pkg/errors"
)

// Severity is the integer rank of a log message or threshold.
// Lower values indicate higher priority messages.
type Severity int

// Named severity ranks. Ranks outside this range are valid "custom" levels
// and are rendered as "Log level <N>: ".
const (
	// LevelCritical represents failures the program cannot recover from
	LevelCritical Severity = iota

	// LevelError denotes failures in specific operations or components
	LevelError

	// LevelWarning signifies potential issues that don't disrupt core functionality
	LevelWarning

	// LevelInfo indicates normal operational messages for tracking progress
	LevelInfo

	// LevelDebug represents debug-level messages for development diagnostics
	LevelDebug
)

// ErrInvalidLevel is reported when a level argument is neither a known level
// name nor an integer rank.
var ErrInvalidLevel = errors.New("logfan: invalid level")

var levelNames = map[string]Severity{
	"critical": LevelCritical,
	"error":    LevelError,
	"warning":  LevelWarning,
	"info":     LevelInfo,
	"debug":    LevelDebug,
}

// LevelToInt canonicalizes a level to its integer rank. It accepts a
// Severity, any integer kind, or one of the level names "critical", "error",
// "warning", "info", "debug". Integers pass through unchanged, which is how
// custom ranks such as -3 or 9 are supported.
//
// Returns:
//   - The integer rank, or an error wrapping ErrInvalidLevel for an unknown
//     name or an unsupported type.
func LevelToInt(level any) (int, error) {
	switch v := level.(type) {
	case Severity:
		return int(v), nil
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case string:
		s, ok := levelNames[v]
		if !ok {
			return 0, errors.Wrapf(ErrInvalidLevel, "unknown level name %q", v)
		}
		return int(s), nil
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "unsupported level type %T", level)
	}
}

// levelLabel is the default severity renderer: named ranks map to their
// uppercase label, anything else to "Log level <N>: ".
func levelLabel(rank int) string {
	switch Severity(rank) {
	case LevelCritical:
		return "CRITICAL: "
	case LevelError:
		return "ERROR: "
	case LevelWarning:
		return "WARNING: "
	case LevelInfo:
		return "INFO: "
	case LevelDebug:
		return "DEBUG: "
	default:
		return "Log level " + strconv.Itoa(rank) + ": "
	}
}
