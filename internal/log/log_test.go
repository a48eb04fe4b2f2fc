package log_test

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/webviewui/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)
	defer log.SetLevel(log.LevelInfo)

	t.Run("Info level hides Debug", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelInfo)

		log.Debug("segment offsets")
		log.Info("Extracting HTML from: a.cpp")
		log.Error("missing input")

		output := buf.String()
		assert.NotContains(t, output, "segment offsets")
		assert.Contains(t, output, "Extracting HTML from: a.cpp")
		assert.Contains(t, output, "missing input")
	})

	t.Run("Debug level logs everything", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelDebug)

		log.Debug("debug message")
		log.Warn("warn message")

		output := buf.String()
		assert.Contains(t, output, "debug: debug message")
		assert.Contains(t, output, "Warning: warn message")
	})

	t.Run("Error level only logs Error", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelError)

		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "info message")
		assert.NotContains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(log.LevelInfo)
	defer log.SetOutput(nil)

	t.Run("Info lines carry no label", func(t *testing.T) {
		buf.Reset()
		log.Info("Output directory: %s", "/tmp/ui")
		assert.Equal(t, "Output directory: /tmp/ui\n", buf.String())
	})

	t.Run("Errors are labelled", func(t *testing.T) {
		buf.Reset()
		log.Error("Could not find %s function", "GetEmbeddedHTML")
		assert.Equal(t, "Error: Could not find GetEmbeddedHTML function\n", buf.String())
	})

	t.Run("Each log message ends with newline", func(t *testing.T) {
		buf.Reset()
		log.Info("message 1")
		log.Info("message 2")

		lines := strings.Split(buf.String(), "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "message 1", lines[0])
		assert.Equal(t, "message 2", lines[1])
	})
}

func TestGetLevel(t *testing.T) {
	originalLevel := log.GetLevel()
	defer log.SetLevel(originalLevel)

	log.SetLevel(log.LevelDebug)
	assert.Equal(t, log.LevelDebug, log.GetLevel())

	log.SetLevel(log.LevelError)
	assert.Equal(t, log.LevelError, log.GetLevel())
}
