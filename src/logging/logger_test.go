package logging

import (
	"bytes"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLogs swaps the base logger for one writing into a buffer.
func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = charmlog.NewWithOptions(&buf, charmlog.Options{Level: LevelInfo})
	t.Cleanup(func() { baseLogger = saved })
	SetLogLevel(level)
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t, "info")

	msg := "Line format not recognized: Epoch 3: Loss: 95% done, Validation Loss: n/a"
	Infof(msg)

	out := buf.String()
	assert.Contains(t, out, "95% done")
	assert.NotContains(t, out, "%!d(MISSING)")
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, "warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
}

func TestSetLogLevel_UnknownIgnored(t *testing.T) {
	captureLogs(t, "error")

	SetLogLevel("verbose")
	assert.Equal(t, LevelError, GetLogLevel())

	SetLogLevel(" Warning ")
	assert.Equal(t, LevelWarn, GetLogLevel())
	assert.True(t, ValidLevel("DEBUG"))
	assert.False(t, ValidLevel("trace"))
}
