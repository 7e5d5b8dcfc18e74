package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerWritesLeveledLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelTrace)

	l.Tracef("opening %s", "book.xlsx")
	l.Errorf("save failed: %d", 2)

	out := buf.String()
	if !strings.Contains(out, "[TRACE] opening book.xlsx") {
		t.Errorf("missing trace line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] save failed: 2") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Tracef("noise")
	l.Infof("more noise")
	l.Warnf("signal")

	out := buf.String()
	if strings.Contains(out, "noise") {
		t.Errorf("low-level lines written despite filter: %q", out)
	}
	if !strings.Contains(out, "[WARN] signal") {
		t.Errorf("missing warn line in %q", out)
	}
}

func TestDisabledDefaultLogger(t *testing.T) {
	// Without LVXLSX_DEBUG the default logger is off.
	l := &Logger{level: LevelOff}
	if l.Enabled() {
		t.Error("zero logger reports enabled")
	}
	l.Infof("goes nowhere")
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
