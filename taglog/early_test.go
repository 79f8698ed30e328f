package taglog

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestEarlyWritef_BypassesSink(t *testing.T) {
	var early bytes.Buffer
	oldEarly := earlyOut
	defer func() { earlyOut = oldEarly }()
	earlyOut = &early

	// A sink that records whether it was ever called.
	sinkCalled := false
	SetSink(func(format string, args ...any) (int, error) {
		sinkCalled = true
		return 0, nil
	})
	defer SetSink(nil)

	EarlyWritef(LevelError, "boot", "cold start %d", 1)

	if sinkCalled {
		t.Fatal("early path must not touch the sink")
	}
	re := regexp.MustCompile(`^E \(\d+\) boot: cold start 1\n$`)
	if !re.MatchString(early.String()) {
		t.Fatalf("early line format mismatch, got: %q", early.String())
	}
}

func TestEarlyWritef_CompileCeiling(t *testing.T) {
	var early bytes.Buffer
	oldEarly := earlyOut
	defer func() { earlyOut = oldEarly }()
	earlyOut = &early

	EarlyWritef(EarlyBuildCeiling+1, "boot", "too verbose")
	if early.Len() != 0 {
		t.Fatalf("levels above EarlyBuildCeiling must be dropped, got: %q", early.String())
	}

	EarlyWritef(LevelNone, "boot", "never")
	if early.Len() != 0 {
		t.Fatalf("LevelNone must never be emitted, got: %q", early.String())
	}
}

func TestEarlyWritef_IgnoresRegistry(t *testing.T) {
	var early bytes.Buffer
	oldEarly := earlyOut
	defer func() { earlyOut = oldEarly }()
	earlyOut = &early

	// Silence the tag in the registry; the early path does not care.
	SetLevel("boot", LevelNone)
	defer SetLevel(Wildcard, LevelInfo)

	EarlyErrorf("boot", "still shown")
	if !strings.Contains(early.String(), "still shown") {
		t.Fatalf("early path must ignore registry levels, got: %q", early.String())
	}
}

func TestEarlyHelpers_NoColor(t *testing.T) {
	var early bytes.Buffer
	oldEarly := earlyOut
	defer func() { earlyOut = oldEarly }()
	earlyOut = &early

	SetColors(ColorAlways)
	defer SetColors(ColorNever)

	EarlyErrorf("boot", "plain")
	if strings.Contains(early.String(), "\033[") {
		t.Fatalf("early lines are never colorized, got: %q", early.String())
	}
}
