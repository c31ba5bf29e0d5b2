package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoIncludesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("Window", "window shown", map[string]interface{}{
		"width": 600,
	})

	out := buf.String()
	assert.Contains(t, out, `"component":"Window"`)
	assert.Contains(t, out, `"width":600`)
	assert.Contains(t, out, `"message":"window shown"`)
}

func TestSessionIsStableAcrossEvents(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	require.NotEmpty(t, log.Session())

	log.Info("A", "first", nil)
	log.Info("B", "second", nil)

	out := buf.String()
	assert.Contains(t, out, `"session":"`+log.Session()+`"`)
}

func TestErrorCarriesErrorField(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Display", errors.New("no session"), nil)

	out := buf.String()
	assert.Contains(t, out, `"error":"no session"`)
	assert.Contains(t, out, `"component":"Display"`)
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("Window", "not visible", nil)

	assert.Empty(t, buf.String())
}
