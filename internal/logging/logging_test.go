package logging

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)

	l.Debug("hidden")
	l.Info("visible", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "key=value")
}

func TestDiscardDropsEverything(t *testing.T) {
	l := Discard()
	l.Error("nothing should be written")
	// Discard loggers are used as the default when debug is off, so they
	// must never panic or write.
	assert.NotNil(t, l)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, "cardrow")
	assert.Contains(t, path, "debug.log")
}
