package taglog

import (
	"fmt"
	"strings"
)

// Level selects log verbosity. Higher values are more verbose: a call is
// emitted when its level is at or below the ceiling in effect.
type Level int

const (
	// LevelNone disables all output.
	LevelNone Level = iota
	// LevelError enables critical errors the module cannot recover from on its own.
	LevelError
	// LevelWarn enables error conditions that recovery measures have been taken for.
	LevelWarn
	// LevelInfo enables messages describing the normal flow of events.
	LevelInfo
	// LevelDebug enables extra diagnostic detail (values, sizes, handles).
	LevelDebug
	// LevelVerbose enables large or frequent messages that may flood the output.
	LevelVerbose
)

// Pre-computed names and line-prefix letters, indexed by level, for
// allocation-free access.
var (
	levelNames   = [...]string{"NONE", "ERROR", "WARN", "INFO", "DEBUG", "VERBOSE"}
	levelLetters = [...]byte{'N', 'E', 'W', 'I', 'D', 'V'}
)

// String returns the canonical upper-case level name.
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// letter returns the single-letter form used in composed lines.
func (l Level) letter() byte {
	if l >= 0 && int(l) < len(levelLetters) {
		return levelLetters[l]
	}
	return '?'
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive; "WARNING" is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return LevelNone, nil
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "VERBOSE":
		return LevelVerbose, nil
	}
	return LevelNone, fmt.Errorf("unknown log level %q", s)
}
