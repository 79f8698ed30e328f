// Package taglog provides a leveled logger with independent per-tag
// verbosity control and a swappable printf-shaped sink.
//
// # Filtering
//
// Verbosity is filtered in two stages. The first is the compile-time
// ceiling: the leveled helpers compare against the BuildCeiling constant
// before touching any run-time state, so calls above the ceiling cost
// nothing at run time and are removed from the binary. Lower the ceiling
// with the taglog_level_* build tags (taglog_early_* for the early path).
//
// The second stage is the run-time registry: every tag has a ceiling,
// settable with SetLevel, falling back to the logger's default level.
// The wildcard tag "*" resets all per-tag entries and sets the default.
//
// # Output
//
// Each surviving call produces one line:
//
//	<color>L (<timestamp>) <tag>: <message><reset>\n
//
// where L is the level letter, the timestamp is milliseconds since
// process start, and the color wrapping (red errors, brown warnings,
// green info) is applied only when enabled. Lines go to the active sink,
// a fmt.Printf-shaped function that defaults to standard output and can
// be replaced at any time with SetSink.
//
// # Usage
//
// Declare a tag per module and log through it:
//
//	const TAG taglog.Tag = "wifi"
//
//	TAG.Infof("connected to %s in %d ms", ssid, ms)
//	TAG.Debugf("rssi %d", rssi)
//
// Adjust verbosity at run time:
//
//	taglog.SetLevel("*", taglog.LevelError)   // quiet everything
//	taglog.SetLevel("wifi", taglog.LevelWarn) // except wifi warnings
//
// Redirect output, for example to a file:
//
//	taglog.SetSink(taglog.WriterSink(f))
//
// # Early logging
//
// The Early functions write directly to standard error without locks,
// registry lookups or the sink, so they are safe from package init
// functions and anywhere else that runs before the logger is configured.
//
// # Concurrency
//
// All functions are safe for concurrent use. Sinks are called without
// logger-side serialization and must themselves be concurrency-safe;
// the provided sinks deliver each line in a single Write call.
package taglog
