package main

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestProcessCommandLine(t *testing.T) {
	flags := processCommandLine([]string{"-config", "my.ini", "-windowed", "-script", "demo.lua"})
	assert.Equal(t, map[string]string{
		"-config":   "my.ini",
		"-windowed": "true",
		"-script":   "demo.lua",
	}, flags)

	// a dangling value flag is treated as set
	flags = processCommandLine([]string{"-windowed", "-script"})
	assert.Equal(t, "true", flags["-script"])

	assert.Empty(t, processCommandLine(nil))
}

func TestFatalVideoError(t *testing.T) {
	err := fatalVideo("draw", "blit window surface", errFake)
	assert.EqualError(t, err, "video draw failed: blit window surface: fake failure")
	assert.ErrorIs(t, err, errFake)

	wrapped := pkgerrors.Wrap(err, "frame")
	assert.True(t, IsFatalVideoError(wrapped))
	assert.True(t, IsFatalVideoError(fmt.Errorf("frame: %w", err)))
	assert.False(t, IsFatalVideoError(errFake))
	assert.False(t, IsFatalVideoError(nil))

	assert.NoError(t, exitOnFatal(nil, nil))
	assert.Equal(t, errFake, exitOnFatal(nil, errFake))
}

func TestScreenLayoutDirtyRect(t *testing.T) {
	var l screenLayout
	// nothing to mark before the first resize
	l.SetDirtyRect(0, 0, 10, 10)
	assert.Zero(t, l.DirtyCount())

	l.ResizeGUI(200, 40)
	assert.Equal(t, 4, l.blockColumns)
	assert.Equal(t, 6, l.blockRows)

	l.SetDirtyRect(-100, -100, 50, 50)
	assert.Zero(t, l.DirtyCount())
	l.SetDirtyRect(63, 7, 2, 2)
	assert.Equal(t, 4, l.DirtyCount())
	l.SetDirtyRect(0, 0, 10000, 10000)
	assert.Equal(t, 20, l.DirtyCount())
	l.ClearDirty()
	assert.Zero(t, l.DirtyCount())
}
