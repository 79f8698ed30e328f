// taglog is a command-line filter for leveled, tagged log lines.
//
// # Usage
//
//	some-program | taglog [FLAGS]
//
// Input lines have the form "LEVEL TAG message"; lines above the ceiling
// configured for their tag are dropped, the rest are re-emitted as
// formatted, timestamped log lines.
//
// # Flags
//
//	-c, --config         Load levels and colors from a YAML file
//	-l, --default-level  Level for tags without an override
//	-L, --level          Per-tag override as tag=LEVEL (repeatable)
//	    --color          Color mode: auto, always or never
//	-o, --output         Append output to a file (default: stdout)
//
// # Examples
//
// Show only warnings and errors, except full verbosity for dhcp:
//
//	tail -f device.log | taglog -l warn -L dhcp=verbose
package main

import "github.com/silvermode/go-taglog/cli"

// version is overridden at build time via ldflags.
var version = "dev"

func main() { cli.Execute(version) }
