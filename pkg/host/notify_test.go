package host

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTerminalNotifier(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out, status bytes.Buffer
	n := NewTerminalNotifier(&out, &status, true)

	n.Info("done")
	n.Warn("careful")
	n.Error("broken")
	assert.Equal(t, "done\ncareful\nbroken\n", out.String())

	boom := errors.New("boom")
	err := n.Progress("Working", func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, status.String(), "Working...")
}

func TestTerminalNotifierNonInteractiveProgress(t *testing.T) {
	var out, status bytes.Buffer
	n := NewTerminalNotifier(&out, &status, false)

	called := false
	assert.NoError(t, n.Progress("Working", func() error { called = true; return nil }))
	assert.True(t, called)
	assert.Empty(t, status.String())
}
