package main

const (
	// Pinch distance, in screen pixels, that triggers one zoom step.
	gestureTolerance = 128
	// Accumulated distance is discarded after this many milliseconds without
	// a gesture event.
	gestureTimeout = 1000
)

// pinchZoom turns two finger multigesture events into zoom shortcuts.
type pinchZoom struct {
	lastTimestamp uint32
	radius        float32
}

// update consumes one multigesture event. dDist is normalised to the screen
// width, which is why screenWidth is needed to get pixels.
func (g *pinchZoom) update(timestamp uint32, fingers int, dDist float32, screenWidth int) ShortcutCommand {
	if fingers != 2 {
		return ShortcutNone
	}
	if timestamp > g.lastTimestamp+gestureTimeout {
		g.radius = 0
	}
	g.lastTimestamp = timestamp
	g.radius += dDist

	pixels := int(g.radius * float32(screenWidth))
	switch {
	case pixels > gestureTolerance:
		g.radius = 0
		return ShortcutZoomViewIn
	case pixels < -gestureTolerance:
		g.radius = 0
		return ShortcutZoomViewOut
	}
	return ShortcutNone
}
