package taglog

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"none", LevelNone},
		{"ERROR", LevelError},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{" info ", LevelInfo},
		{"DEBUG", LevelDebug},
		{"verbose", LevelVerbose},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level name")
	}
}

func TestLevelOrdering(t *testing.T) {
	// The whole filtering model depends on this order.
	if !(LevelNone < LevelError && LevelError < LevelWarn && LevelWarn < LevelInfo &&
		LevelInfo < LevelDebug && LevelDebug < LevelVerbose) {
		t.Fatal("level ordering broken: NONE < ERROR < WARN < INFO < DEBUG < VERBOSE expected")
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Fatalf("LevelWarn.String() = %q, want WARN", got)
	}
	if got := Level(42).String(); got != "UNKNOWN" {
		t.Fatalf("out-of-range String() = %q, want UNKNOWN", got)
	}
}

func TestLevelLetter(t *testing.T) {
	letters := map[Level]byte{
		LevelError:   'E',
		LevelWarn:    'W',
		LevelInfo:    'I',
		LevelDebug:   'D',
		LevelVerbose: 'V',
	}
	for lv, want := range letters {
		if got := lv.letter(); got != want {
			t.Fatalf("%v.letter() = %c, want %c", lv, got, want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"auto": ColorAuto, "ALWAYS": ColorAlways, " never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil {
			t.Fatalf("ParseColorMode(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColorMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
}
