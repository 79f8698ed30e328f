//go:build taglog_level_warn

package taglog

// BuildCeiling is the compile-time verbosity ceiling. See ceiling.go.
const BuildCeiling = LevelWarn
