package runebuf

import (
	"strings"
	"testing"
)

type testWriter struct {
	message string
	t       testing.TB
}

func (w *testWriter) Write(b []byte) (int, error) {
	s := string(b)
	if !strings.Contains(s, w.message) {
		w.t.Error("expected log'", string(b), "' to contain", w.message)
	}

	return len(b), nil
}

func TestSetLogWriters(t *testing.T) {
	cases := []string{
		"mapped buffer file",
		"short read on login packet",
	}

	for _, s := range cases {
		w := &testWriter{s, t}
		SetLogWriters(w)

		if len(logWriters) != 1 {
			t.Error("expected the length of logWriters to be 1")
		}

		logger.Info(s)
	}
}

func TestAddLogWriters(t *testing.T) {
	SetLogWriters(&testWriter{"a", t})

	if len(logWriters) != 1 {
		t.Error("expected the length of logWriters to be 1")
	}

	AddLogWriter(&testWriter{"a", t})

	if len(logWriters) != 2 {
		t.Error("expected the length of logWriters to be 2")
	}
}

func TestEnableLogging(t *testing.T) {
	if Logging() {
		t.Error("logging should be disabled by default")
	}

	EnableLogging(true)
	if !Logging() {
		t.Error("expected logging to be enabled")
	}

	EnableLogging(false)

	if Logger() == nil {
		t.Error("the package logger should exist even while disabled")
	}
}
