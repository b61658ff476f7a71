package debuglog

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

// captureOutput redirects the standard logger into a buffer for the duration
// of fn and returns what was written.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prevOut := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()
	fn()
	return buf.String()
}

func setGlobalLevel(t *testing.T, level Level) {
	t.Helper()
	prev := GlobalLevel
	GlobalLevel = level
	t.Cleanup(func() { GlobalLevel = prev })
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want Level
	}{
		{"trace", LevelTrace},
		{"verbose", LevelVerbose},
		{"debug", LevelVerbose},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"off", LevelOff},
		{"  INFO  ", LevelInfo},
		{"", LevelWarn},
		{"bogus", LevelWarn},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.raw); got != tc.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestShouldLog(t *testing.T) {
	setGlobalLevel(t, LevelInfo)

	t.Run("Global threshold", func(t *testing.T) {
		if !ShouldLog(LevelError, UseGlobal) {
			t.Error("Error should pass an info threshold")
		}
		if !ShouldLog(LevelInfo, UseGlobal) {
			t.Error("Info should pass an info threshold")
		}
		if ShouldLog(LevelVerbose, UseGlobal) {
			t.Error("Verbose should not pass an info threshold")
		}
	})

	t.Run("Local override", func(t *testing.T) {
		if !ShouldLog(LevelTrace, LevelTrace) {
			t.Error("Local trace threshold should accept trace")
		}
		if ShouldLog(LevelError, LevelOff) {
			t.Error("Local off threshold should reject everything")
		}
	})
}

func TestLogOutput(t *testing.T) {
	setGlobalLevel(t, LevelVerbose)

	t.Run("With prefix", func(t *testing.T) {
		out := captureOutput(t, func() {
			Log("Test", LevelInfo, UseGlobal, "value=%d", 42)
		})
		if !strings.Contains(out, "[Test] value=42") {
			t.Errorf("Unexpected output: %q", out)
		}
	})

	t.Run("Without prefix", func(t *testing.T) {
		out := captureOutput(t, func() {
			Log("", LevelInfo, UseGlobal, "bare message")
		})
		if !strings.Contains(out, "bare message") || strings.Contains(out, "[") {
			t.Errorf("Unexpected output: %q", out)
		}
	})

	t.Run("Suppressed", func(t *testing.T) {
		out := captureOutput(t, func() {
			Log("Test", LevelTrace, UseGlobal, "should not appear")
		})
		if out != "" {
			t.Errorf("Expected no output, got %q", out)
		}
	})
}

func TestLevelHelpers(t *testing.T) {
	setGlobalLevel(t, LevelTrace)

	out := captureOutput(t, func() {
		ErrorLog("e")
		WarnLog("w")
		InfoLog("i")
		DebugLog("d")
		TraceLog("t")
	})

	for _, want := range []string{"[ERROR] e", "[WARN] w", "[INFO] i", "[DEBUG] d", "[TRACE] t"} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %q in output %q", want, out)
		}
	}
}

func TestLogTextFragment(t *testing.T) {
	setGlobalLevel(t, LevelVerbose)

	t.Run("Short text in full", func(t *testing.T) {
		out := captureOutput(t, func() {
			LogTextFragment("Frag", LevelInfo, UseGlobal, "payload", "short", 10)
		})
		if !strings.Contains(out, "payload (len=5): short") {
			t.Errorf("Unexpected output: %q", out)
		}
	})

	t.Run("Long text truncated", func(t *testing.T) {
		text := strings.Repeat("a", 30) + strings.Repeat("z", 30)
		out := captureOutput(t, func() {
			LogTextFragment("Frag", LevelInfo, UseGlobal, "payload", text, 10)
		})
		if !strings.Contains(out, "first 10 chars: aaaaaaaaaa") {
			t.Errorf("Missing head fragment in %q", out)
		}
		if !strings.Contains(out, "last 10 chars: zzzzzzzzzz") {
			t.Errorf("Missing tail fragment in %q", out)
		}
		if strings.Contains(out, text) {
			t.Error("Full text should not be logged")
		}
	})
}

func TestTimingEndOnce(t *testing.T) {
	setGlobalLevel(t, LevelVerbose)

	out := captureOutput(t, func() {
		timing := StartTiming("op")
		timing.End()
		timing.End()
		timing.EndWithDefer()
	})

	if got := strings.Count(out, "op: completed in"); got != 1 {
		t.Errorf("Expected exactly one timing line, got %d in %q", got, out)
	}
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestRunAndLog(t *testing.T) {
	out := captureOutput(t, func() {
		RunAndLog("cleanup", func() error { return errors.New("boom") })
		RunAndLog("quiet", func() error { return nil })
	})

	if !strings.Contains(out, "cleanup: boom") {
		t.Errorf("Expected failure to be logged, got %q", out)
	}
	if strings.Contains(out, "quiet") {
		t.Errorf("Successful run should not log, got %q", out)
	}
}

func TestCloseWithLog(t *testing.T) {
	out := captureOutput(t, func() {
		CloseWithLog("resource", failingCloser{})
		CloseWithLog("absent", nil)
	})

	if !strings.Contains(out, "resource: close failed") {
		t.Errorf("Expected close failure to be logged, got %q", out)
	}
	if strings.Contains(out, "absent") {
		t.Errorf("Nil closer should be silent, got %q", out)
	}
}
