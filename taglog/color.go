package taglog

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI SGR sequences matching the classic serial-console palette:
// errors red, warnings brown, info green, debug and verbose undecorated.
const (
	colorRed   = "\033[0;31m"
	colorBrown = "\033[0;33m"
	colorGreen = "\033[0;32m"
	colorReset = "\033[0m"
)

// levelColors is indexed by Level; empty means no decoration.
var levelColors = [...]string{"", colorRed, colorBrown, colorGreen, "", ""}

func (l Level) color() string {
	if l >= 0 && int(l) < len(levelColors) {
		return levelColors[l]
	}
	return ""
}

// ColorMode controls ANSI color decoration of composed lines.
type ColorMode int

const (
	// ColorAuto enables colors when standard output is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways enables colors unconditionally.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

func (m ColorMode) enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ParseColorMode converts a mode name ("auto", "always" or "never").
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}
