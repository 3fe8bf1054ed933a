package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, level int, emit func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(NORMAL)
	}()

	emit()
	return buf.String()
}

func TestDebugSuppressedByDefault(t *testing.T) {
	out := capture(t, NORMAL, func() {
		Debug("invisible")
		Error("visible")
	})
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
}

func TestVerbose(t *testing.T) {
	out := capture(t, ALL, func() {
		Debug("hello %d", 42)
	})
	assert.Contains(t, out, "hello 42")
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "logging_test.go:", "caller location is reported")
}

func TestLevelMask(t *testing.T) {
	out := capture(t, ERROR|CRITICAL, func() {
		Info("info")
		Warning("warning")
		Error("error")
		Critical("critical")
	})
	assert.NotContains(t, out, "info")
	assert.NotContains(t, out, "warning")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
