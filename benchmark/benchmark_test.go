package benchmark

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	called := false
	_, err := Run("motif_mark draw", &buf, func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !called {
		t.Error("wrapped function was not called")
	}
	for _, want := range []string{"Running: motif_mark draw", "Time Elapsed", "GC Cycles"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRunError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	if _, err := Run("x", &buf, func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
	if !strings.Contains(buf.String(), "Failed: boom") {
		t.Errorf("report missing failure line:\n%s", buf.String())
	}
}
