//go:build taglog_level_debug

package taglog

// BuildCeiling is the compile-time verbosity ceiling. See ceiling.go.
const BuildCeiling = LevelDebug
