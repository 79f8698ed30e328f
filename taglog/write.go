package taglog

import (
	"github.com/valyala/bytebufferpool"
)

// linePool recycles the buffers used to compose decorated format strings.
var linePool bytebufferpool.Pool

// Writef is the run-time entry point behind the leveled helpers. Calls
// more verbose than the registry ceiling for tag return without output.
// Surviving calls compose one line and hand it to the active sink:
//
//	<color>L (<timestamp>) <tag>: <message><reset>\n
//
// The caller's format string is decorated rather than pre-rendered, so
// the sink receives the full printf pair with timestamp and tag
// prepended to the argument list, mirroring the sink signature.
func (l *Logger) Writef(level Level, tag, format string, args ...any) {
	if level == LevelNone || level > l.levelFor(tag) {
		return
	}
	sink := *l.sink.Load()

	color := ""
	if l.colors.Load() {
		color = level.color()
	}

	buf := linePool.Get()
	buf.WriteString(color)
	buf.WriteByte(level.letter())
	buf.WriteString(" (%d) %s: ")
	buf.WriteString(format)
	if color != "" {
		buf.WriteString(colorReset)
	}
	buf.WriteByte('\n')
	decorated := buf.String()
	linePool.Put(buf)

	all := make([]any, 0, len(args)+2)
	all = append(all, Timestamp(), tag)
	all = append(all, args...)
	sink(decorated, all...)
}

// Errorf logs at LevelError under tag. Compiled out above BuildCeiling.
func (l *Logger) Errorf(tag, format string, args ...any) {
	if BuildCeiling >= LevelError {
		l.Writef(LevelError, tag, format, args...)
	}
}

// Warnf logs at LevelWarn under tag. Compiled out above BuildCeiling.
func (l *Logger) Warnf(tag, format string, args ...any) {
	if BuildCeiling >= LevelWarn {
		l.Writef(LevelWarn, tag, format, args...)
	}
}

// Infof logs at LevelInfo under tag. Compiled out above BuildCeiling.
func (l *Logger) Infof(tag, format string, args ...any) {
	if BuildCeiling >= LevelInfo {
		l.Writef(LevelInfo, tag, format, args...)
	}
}

// Debugf logs at LevelDebug under tag. Compiled out above BuildCeiling.
func (l *Logger) Debugf(tag, format string, args ...any) {
	if BuildCeiling >= LevelDebug {
		l.Writef(LevelDebug, tag, format, args...)
	}
}

// Verbosef logs at LevelVerbose under tag. Compiled out above BuildCeiling.
func (l *Logger) Verbosef(tag, format string, args ...any) {
	if BuildCeiling >= LevelVerbose {
		l.Writef(LevelVerbose, tag, format, args...)
	}
}

// Writef writes through the Default logger.
func Writef(level Level, tag, format string, args ...any) {
	Default.Writef(level, tag, format, args...)
}

// Errorf logs at LevelError on the Default logger.
func Errorf(tag, format string, args ...any) {
	if BuildCeiling >= LevelError {
		Default.Writef(LevelError, tag, format, args...)
	}
}

// Warnf logs at LevelWarn on the Default logger.
func Warnf(tag, format string, args ...any) {
	if BuildCeiling >= LevelWarn {
		Default.Writef(LevelWarn, tag, format, args...)
	}
}

// Infof logs at LevelInfo on the Default logger.
func Infof(tag, format string, args ...any) {
	if BuildCeiling >= LevelInfo {
		Default.Writef(LevelInfo, tag, format, args...)
	}
}

// Debugf logs at LevelDebug on the Default logger.
func Debugf(tag, format string, args ...any) {
	if BuildCeiling >= LevelDebug {
		Default.Writef(LevelDebug, tag, format, args...)
	}
}

// Verbosef logs at LevelVerbose on the Default logger.
func Verbosef(tag, format string, args ...any) {
	if BuildCeiling >= LevelVerbose {
		Default.Writef(LevelVerbose, tag, format, args...)
	}
}
