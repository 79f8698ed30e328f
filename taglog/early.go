package taglog

import (
	"fmt"
	"io"
	"os"
)

// earlyOut is the low-level destination of the early path. Standard
// error, so early lines never interleave with sink output on stdout.
var earlyOut io.Writer = os.Stderr

// EarlyWritef formats straight to standard error, bypassing the registry
// and the sink. It takes no locks and reads no logger state, so it is
// usable before any initialization has happened, including from package
// init functions. Filtering is compile-time only, against
// EarlyBuildCeiling; lines are never colorized.
func EarlyWritef(level Level, tag, format string, args ...any) {
	if level == LevelNone || level > EarlyBuildCeiling {
		return
	}
	all := make([]any, 0, len(args)+2)
	all = append(all, Timestamp(), tag)
	all = append(all, args...)
	fmt.Fprintf(earlyOut, string(level.letter())+" (%d) %s: "+format+"\n", all...)
}

// EarlyErrorf logs at LevelError through the early path.
func EarlyErrorf(tag, format string, args ...any) {
	if EarlyBuildCeiling >= LevelError {
		EarlyWritef(LevelError, tag, format, args...)
	}
}

// EarlyWarnf logs at LevelWarn through the early path.
func EarlyWarnf(tag, format string, args ...any) {
	if EarlyBuildCeiling >= LevelWarn {
		EarlyWritef(LevelWarn, tag, format, args...)
	}
}

// EarlyInfof logs at LevelInfo through the early path.
func EarlyInfof(tag, format string, args ...any) {
	if EarlyBuildCeiling >= LevelInfo {
		EarlyWritef(LevelInfo, tag, format, args...)
	}
}

// EarlyDebugf logs at LevelDebug through the early path.
func EarlyDebugf(tag, format string, args ...any) {
	if EarlyBuildCeiling >= LevelDebug {
		EarlyWritef(LevelDebug, tag, format, args...)
	}
}

// EarlyVerbosef logs at LevelVerbose through the early path.
func EarlyVerbosef(tag, format string, args ...any) {
	if EarlyBuildCeiling >= LevelVerbose {
		EarlyWritef(LevelVerbose, tag, format, args...)
	}
}
