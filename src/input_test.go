package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMouseButtons(t *testing.T) {
	var in InputState

	in.beginFrame()
	in.onMouseButton(MouseLeft, true, 10, 20)
	in.endFrame(nil)
	assert.Equal(t, CursorPressed, in.Cursor.Left)
	assert.Equal(t, OldLeftDown, in.Cursor.Old)
	assert.Equal(t, CursorPressed, in.Cursor.Any)

	// held: the changed bit goes away on the next frame
	in.beginFrame()
	in.endFrame(nil)
	assert.Equal(t, CursorDown, in.Cursor.Left)
	assert.Zero(t, in.Cursor.Old)

	in.beginFrame()
	in.onMouseButton(MouseLeft, false, 11, 21)
	in.onMouseButton(MouseRight, true, 12, 22)
	in.endFrame(nil)
	assert.Equal(t, CursorReleased, in.Cursor.Left)
	assert.Equal(t, CursorPressed, in.Cursor.Right)
	assert.Equal(t, OldRightDown, in.Cursor.Old)

	in.beginFrame()
	in.onMouseButton(MouseMiddle, true, 0, 0)
	in.onMouseButton(MouseRight, false, 13, 23)
	in.endFrame(nil)
	assert.Equal(t, CursorPressed, in.Cursor.Middle)
	assert.Equal(t, OldRightUp, in.Cursor.Old)

	want := []MouseInput{
		{10, 20, MouseInputLeftDown},
		{11, 21, MouseInputLeftUp},
		{12, 22, MouseInputRightDown},
		{13, 23, MouseInputRightUp},
	}
	for _, w := range want {
		got, ok := in.DequeueMouseInput()
		assert.True(t, ok)
		assert.Equal(t, w, got)
	}
	_, ok := in.DequeueMouseInput()
	assert.False(t, ok)
}

func TestMouseInputQueueDropsOldest(t *testing.T) {
	var q mouseInputQueue
	for i := 0; i < mouseInputQueueSize+3; i++ {
		q.push(MouseInput{X: i})
	}
	first, ok := q.pop()
	assert.True(t, ok)
	assert.Equal(t, 3, first.X)
	assert.Equal(t, mouseInputQueueSize-1, q.size)
}

func TestMouseWheelAndMotion(t *testing.T) {
	var in InputState
	in.onMouseWheel(1)
	in.onMouseWheel(-3)
	in.onMouseMotion(5, 6)
	assert.Equal(t, -2*wheelStep, in.Cursor.Wheel)
	assert.Equal(t, 5, in.Cursor.X)
	assert.Equal(t, 6, in.Cursor.Y)
}

func TestKeyState(t *testing.T) {
	var in InputState
	in.onKeyDown(KeyHome, ScancodeReturn)
	assert.Equal(t, Key(KeyHome), in.LastKey)
	assert.EqualValues(t, 1, in.KeysPressed[ScancodeReturn])

	keys := make([]uint8, 300)
	keys[ScancodeReturn] = 1
	in.endFrame(keys)
	assert.True(t, in.KeyDown(ScancodeReturn))
	assert.False(t, in.KeyDown(Scancode(299)))
	assert.False(t, in.KeyDown(Scancode(1000)))

	in.beginFrame()
	assert.Zero(t, in.LastKey)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "RETURN", KeyToString(KeyEnter))
	assert.Equal(t, Key(KeyF12), StringToKey("F12"))
	assert.Equal(t, Key(KeyUnknown), StringToKey("nope"))
	assert.Equal(t, "", KeyToString(Key(-5)))
}

func TestLegacyKeycode(t *testing.T) {
	assert.Equal(t, int('A'), legacyKeycode(Key('a')))
	assert.Equal(t, int('Z'), legacyKeycode(Key('z')))
	assert.Equal(t, int('1'), legacyKeycode(Key('1')))
	assert.Equal(t, 0x52, legacyKeycode(Key(0x40000052)))
}

func TestScancodeToKeycode(t *testing.T) {
	s, _ := newTestSystem(t)
	assert.Equal(t, int('A'), s.ScancodeToKeycode(4))
	assert.Equal(t, int('\r'), s.ScancodeToKeycode(40))
	assert.Equal(t, 0x45, s.ScancodeToKeycode(69))
	assert.Equal(t, 0, s.ScancodeToKeycode(200))
}

func TestSDLMouseButton(t *testing.T) {
	for _, tc := range []struct {
		in   sdl.Button
		want MouseButton
	}{
		{sdl.ButtonLeft, MouseLeft},
		{sdl.ButtonMiddle, MouseMiddle},
		{sdl.ButtonRight, MouseRight},
	} {
		b, ok := sdlMouseButton(tc.in)
		assert.True(t, ok)
		assert.Equal(t, tc.want, b)
	}
	_, ok := sdlMouseButton(sdl.ButtonX1)
	assert.False(t, ok)
}

func TestShortcutNames(t *testing.T) {
	assert.Equal(t, "zoomIn", ShortcutZoomViewIn.String())
	assert.Equal(t, "zoomOut", ShortcutZoomViewOut.String())
	assert.Equal(t, "screenshot", ShortcutScreenshot.String())
	assert.Equal(t, "", ShortcutNone.String())
}
