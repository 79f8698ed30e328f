package taglog

// Tag identifies a logical module for independent level control. Declare
// one per file or component and log through it:
//
//	const TAG taglog.Tag = "wifi"
//
//	TAG.Infof("connected to %s in %d ms", ssid, ms)
//
// Tags are compared by value; two packages using the same string share a
// ceiling.
type Tag string

// SetLevel sets the run-time ceiling for this tag on the Default logger.
func (t Tag) SetLevel(level Level) { Default.SetLevel(string(t), level) }

// Errorf logs at LevelError. Compiled out above BuildCeiling.
func (t Tag) Errorf(format string, args ...any) {
	if BuildCeiling >= LevelError {
		Default.Writef(LevelError, string(t), format, args...)
	}
}

// Warnf logs at LevelWarn. Compiled out above BuildCeiling.
func (t Tag) Warnf(format string, args ...any) {
	if BuildCeiling >= LevelWarn {
		Default.Writef(LevelWarn, string(t), format, args...)
	}
}

// Infof logs at LevelInfo. Compiled out above BuildCeiling.
func (t Tag) Infof(format string, args ...any) {
	if BuildCeiling >= LevelInfo {
		Default.Writef(LevelInfo, string(t), format, args...)
	}
}

// Debugf logs at LevelDebug. Compiled out above BuildCeiling.
func (t Tag) Debugf(format string, args ...any) {
	if BuildCeiling >= LevelDebug {
		Default.Writef(LevelDebug, string(t), format, args...)
	}
}

// Verbosef logs at LevelVerbose. Compiled out above BuildCeiling.
func (t Tag) Verbosef(format string, args ...any) {
	if BuildCeiling >= LevelVerbose {
		Default.Writef(LevelVerbose, string(t), format, args...)
	}
}
