//go:build taglog_early_warn

package taglog

// EarlyBuildCeiling bounds the early write path. See early_ceiling.go.
const EarlyBuildCeiling = LevelWarn
