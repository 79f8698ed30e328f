//go:build taglog_level_info

package taglog

// BuildCeiling is the compile-time verbosity ceiling. See ceiling.go.
const BuildCeiling = LevelInfo
