package taglog

import (
	"sync"
	"sync/atomic"
)

// Wildcard is the tag that addresses every tag at once in SetLevel.
const Wildcard = "*"

// Logger maps (level, tag) log calls onto formatted lines and forwards
// them to the active sink. The tag registry is guarded by a mutex and
// the sink is swapped through an atomic pointer, so all methods are safe
// for concurrent use; a write racing a SetSink uses either the old or
// the new sink in full, never a mix of both.
type Logger struct {
	mu           sync.RWMutex
	levels       map[string]Level
	defaultLevel Level

	sink   atomic.Pointer[Sink]
	colors atomic.Bool
}

// Config seeds a Logger. The zero value uses automatic color detection
// and the standard-output sink, with LevelNone as the default level, so
// nothing is emitted until SetLevel is called; most callers start with
// DefaultLevel set to LevelInfo.
type Config struct {
	// DefaultLevel is the run-time ceiling for tags without a registry entry.
	DefaultLevel Level
	// Colors selects ANSI decoration of composed lines.
	Colors ColorMode
	// Sink overrides the standard-output sink when non-nil.
	Sink Sink
}

// New constructs a Logger from cfg.
func New(cfg Config) *Logger {
	l := &Logger{
		levels:       make(map[string]Level),
		defaultLevel: cfg.DefaultLevel,
	}
	s := cfg.Sink
	if s == nil {
		s = stdoutSink
	}
	l.sink.Store(&s)
	l.colors.Store(cfg.Colors.enabled())
	return l
}

// Default is the process-wide logger behind the package-level functions
// and the Tag methods.
var Default = New(Config{DefaultLevel: LevelInfo})

// SetLevel sets the run-time ceiling for tag, replacing any previous
// setting. The Wildcard tag drops every per-tag entry and sets the
// default level instead.
func (l *Logger) SetLevel(tag string, level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tag == Wildcard {
		clear(l.levels)
		l.defaultLevel = level
		return
	}
	l.levels[tag] = level
}

// levelFor returns the run-time ceiling in effect for tag.
func (l *Logger) levelFor(tag string) Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if lv, ok := l.levels[tag]; ok {
		return lv
	}
	return l.defaultLevel
}

// SetSink replaces the sink for all subsequent writes. A nil sink
// restores the standard-output default. In-flight writes are not
// drained; each completes on whichever sink it started with.
func (l *Logger) SetSink(s Sink) {
	if s == nil {
		s = stdoutSink
	}
	l.sink.Store(&s)
}

// SetColors switches ANSI color decoration. ColorAuto is resolved
// against standard output at the time of the call.
func (l *Logger) SetColors(mode ColorMode) {
	l.colors.Store(mode.enabled())
}

// SetLevel sets the run-time ceiling for tag on the Default logger.
func SetLevel(tag string, level Level) { Default.SetLevel(tag, level) }

// SetSink replaces the Default logger's sink.
func SetSink(s Sink) { Default.SetSink(s) }

// SetColors switches color decoration on the Default logger.
func SetColors(mode ColorMode) { Default.SetColors(mode) }
