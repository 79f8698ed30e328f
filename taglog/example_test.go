package taglog_test

import (
	"os"

	"github.com/silvermode/go-taglog/taglog"
)

const TAG taglog.Tag = "wifi"

// This example shows per-tag verbosity control through a Tag handle.
func ExampleTag() {
	TAG.SetLevel(taglog.LevelWarn)

	TAG.Infof("scan finished, %d networks", 12) // filtered
	TAG.Warnf("weak signal on %s", "ap0")       // emitted
}

// This example quiets the whole process, then re-opens one module.
func ExampleSetLevel() {
	taglog.SetLevel("*", taglog.LevelError)
	taglog.SetLevel("dhcp", taglog.LevelVerbose)

	taglog.Infof("wifi", "hidden")
	taglog.Verbosef("dhcp", "lease renewed")
}

// This example redirects all output to a file.
func ExampleSetSink() {
	f, err := os.CreateTemp("", "taglog")
	if err != nil {
		return
	}
	defer os.Remove(f.Name())

	taglog.SetSink(taglog.WriterSink(f))
	defer taglog.SetSink(nil) // back to stdout

	taglog.Infof("app", "now logging to %s", f.Name())
}

// This example shows the early path, usable before anything is set up.
func ExampleEarlyErrorf() {
	taglog.EarlyErrorf("boot", "clock source %s unavailable", "pll")
}
