package logger

import (
	"bytes"
	"testing"
	"time"
)

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(false)
	l.SetOutput(&buf)
	l.Log("hidden %d", 1)
	l.Section("hidden")
	l.Block("a\nb")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestLoggerNil(t *testing.T) {
	var l *Logger
	if l.Enabled() {
		t.Error("nil logger reports enabled")
	}
	l.Log("nothing")
	l.Section("nothing")
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(true)
	l.SetOutput(&buf)
	l.Section("Parse")
	l.Log("instructions: %d", 7)
	l.Block("one\ntwo\n")

	want := "[bspregexp] === Parse ===\n" +
		"[bspregexp] instructions: 7\n" +
		"[bspregexp] one\n" +
		"[bspregexp] two\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(true)
	l.SetOutput(&buf)
	l.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC) }
	if err := l.SetTimestamp("%Y-%m-%d %H:%M:%S"); err != nil {
		t.Fatalf("SetTimestamp: %v", err)
	}
	l.Log("hello")
	want := "2024-03-09 14:05:06 [bspregexp] hello\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := l.SetTimestamp(""); err != nil {
		t.Fatalf("SetTimestamp(\"\"): %v", err)
	}
	l.Log("plain")
	if buf.String() != "[bspregexp] plain\n" {
		t.Errorf("output = %q", buf.String())
	}
}
