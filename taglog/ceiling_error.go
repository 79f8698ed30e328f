//go:build taglog_level_error

package taglog

// BuildCeiling is the compile-time verbosity ceiling. See ceiling.go.
const BuildCeiling = LevelError
