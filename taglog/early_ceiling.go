//go:build !taglog_early_none && !taglog_early_error && !taglog_early_warn && !taglog_early_debug && !taglog_early_verbose

package taglog

// EarlyBuildCeiling bounds the early write path separately from
// BuildCeiling, since pre-initialization code usually wants a quieter
// build than the rest of the program. Adjust it with one of the
// taglog_early_* build tags.
const EarlyBuildCeiling = LevelInfo
