//go:build !taglog_level_none && !taglog_level_error && !taglog_level_warn && !taglog_level_info && !taglog_level_debug

package taglog

// BuildCeiling is the compile-time verbosity ceiling. The leveled helpers
// compare against it before touching any run-time state, so calls above
// the ceiling are dead code and the linker drops them along with their
// argument evaluation. Lower it with one of the taglog_level_* build tags:
//
//	go build -tags taglog_level_warn ./...
const BuildCeiling = LevelVerbose
