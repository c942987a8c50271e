package main

type CursorID int

const (
	CursorArrow CursorID = iota
	CursorBlank
	CursorUpArrow
	CursorUpDownArrow
	CursorHandPoint
	CursorZZZ
	CursorDiagonalArrows
	CursorPicker
	CursorTreeDown
	CursorFountainDown
	CursorStatueDown
	CursorBenchDown
	CursorCrossHair
	CursorBinDown
	CursorLamppostDown
	CursorFenceDown
	CursorFlowerDown
	CursorPathDown
	CursorDigDown
	CursorWaterDown
	CursorHouseDown
	CursorVolcanoDown
	CursorWalkDown
	CursorPaintDown
	CursorEntranceDown
	CursorHandOpen
	CursorHandClosed
	CursorCount
)

// cursorShape is the closest system cursor available for an engine cursor.
type cursorShape int

const (
	shapeArrow cursorShape = iota
	shapeHidden
	shapeHand
	shapeCrosshair
	shapeWait
	shapeSizeNS
	shapeSizeNWSE
	shapeNo
	shapeCount
)

var cursorShapes = [CursorCount]cursorShape{
	CursorBlank:          shapeHidden,
	CursorUpDownArrow:    shapeSizeNS,
	CursorHandPoint:      shapeHand,
	CursorZZZ:            shapeWait,
	CursorDiagonalArrows: shapeSizeNWSE,
	CursorPicker:         shapeCrosshair,
	CursorCrossHair:      shapeCrosshair,
	CursorBinDown:        shapeNo,
	CursorHandOpen:       shapeHand,
	CursorHandClosed:     shapeHand,
}

func (id CursorID) shape() cursorShape {
	if id < 0 || id >= CursorCount {
		return shapeArrow
	}
	return cursorShapes[id]
}
