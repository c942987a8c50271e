package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinchZoom(t *testing.T) {
	var g pinchZoom
	// 0.1 of a 1000 pixel screen is under the tolerance
	assert.Equal(t, ShortcutNone, g.update(100, 2, 0.1, 1000))
	assert.Equal(t, ShortcutZoomViewIn, g.update(200, 2, 0.05, 1000))
	assert.Zero(t, g.radius)

	assert.Equal(t, ShortcutNone, g.update(300, 2, -0.1, 1000))
	assert.Equal(t, ShortcutZoomViewOut, g.update(400, 2, -0.1, 1000))
}

func TestPinchZoomIgnoresOtherFingerCounts(t *testing.T) {
	var g pinchZoom
	assert.Equal(t, ShortcutNone, g.update(100, 3, 1, 1000))
	assert.Zero(t, g.radius)
	assert.Zero(t, g.lastTimestamp)
}

func TestPinchZoomResetsAfterTimeout(t *testing.T) {
	var g pinchZoom
	assert.Equal(t, ShortcutNone, g.update(100, 2, 0.1, 1000))
	// the earlier distance is forgotten after more than a second
	assert.Equal(t, ShortcutNone, g.update(1101, 2, 0.1, 1000))
	// exactly one second later it still counts
	assert.Equal(t, ShortcutZoomViewIn, g.update(2101, 2, 0.05, 1000))
}

func TestCursorShapes(t *testing.T) {
	assert.Equal(t, 27, int(CursorCount))
	assert.Equal(t, shapeArrow, CursorArrow.shape())
	assert.Equal(t, shapeHidden, CursorBlank.shape())
	assert.Equal(t, shapeHand, CursorHandClosed.shape())
	assert.Equal(t, shapeArrow, CursorTreeDown.shape())
	assert.Equal(t, shapeArrow, CursorID(99).shape())
	assert.Equal(t, shapeArrow, CursorID(-1).shape())
}
