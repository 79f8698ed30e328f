//go:build taglog_level_none

package taglog

// BuildCeiling is the compile-time verbosity ceiling. See ceiling.go.
const BuildCeiling = LevelNone
