package main

// Mouse button state bits.
const (
	CursorUp       = 0
	CursorDown     = 1
	CursorChanged  = 2
	CursorPressed  = CursorDown | CursorChanged
	CursorReleased = CursorUp | CursorChanged
)

// One wheel notch, in engine units.
const wheelStep = 128

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Codes pushed to the mouse input queue.
const (
	MouseInputLeftDown  = 1
	MouseInputLeftUp    = 2
	MouseInputRightDown = 3
	MouseInputRightUp   = 4
)

// Values of CursorState.Old.
const (
	OldLeftDown  = 1
	OldRightDown = 2
	OldLeftUp    = 3
	OldRightUp   = 4
)

type CursorState struct {
	X, Y                int
	Left, Middle, Right int
	Any                 int
	Wheel               int
	Old                 int
}

type MouseInput struct {
	X, Y  int
	State int
}

const mouseInputQueueSize = 64

// mouseInputQueue is a fixed size ring; the oldest entry is dropped when full.
type mouseInputQueue struct {
	items      [mouseInputQueueSize]MouseInput
	head, size int
}

func (q *mouseInputQueue) push(mi MouseInput) {
	if q.size == mouseInputQueueSize {
		q.head = (q.head + 1) % mouseInputQueueSize
		q.size--
	}
	q.items[(q.head+q.size)%mouseInputQueueSize] = mi
	q.size++
}

func (q *mouseInputQueue) pop() (MouseInput, bool) {
	if q.size == 0 {
		return MouseInput{}, false
	}
	mi := q.items[q.head]
	q.head = (q.head + 1) % mouseInputQueueSize
	q.size--
	return mi, true
}

const keyCount = 256

// InputState is the per frame view of mouse and keyboard the engine polls.
type InputState struct {
	Cursor      CursorState
	LastKey     Key
	KeysPressed [keyCount]byte
	KeysState   []uint8
	mouseQueue  mouseInputQueue
}

// beginFrame clears the edge triggered state of the previous frame.
func (in *InputState) beginFrame() {
	in.LastKey = 0
	in.Cursor.Left &^= CursorChanged
	in.Cursor.Middle &^= CursorChanged
	in.Cursor.Right &^= CursorChanged
	in.Cursor.Old = 0
}

func (in *InputState) endFrame(keys []uint8) {
	in.Cursor.Any = in.Cursor.Left | in.Cursor.Middle | in.Cursor.Right
	in.KeysState = keys
}

func (in *InputState) onMouseMotion(x, y int) {
	in.Cursor.X, in.Cursor.Y = x, y
}

func (in *InputState) onMouseWheel(dy int) {
	in.Cursor.Wheel += dy * wheelStep
}

func (in *InputState) onMouseButton(button MouseButton, down bool, x, y int) {
	switch button {
	case MouseLeft:
		if down {
			in.mouseQueue.push(MouseInput{x, y, MouseInputLeftDown})
			in.Cursor.Left = CursorPressed
			in.Cursor.Old = OldLeftDown
		} else {
			in.mouseQueue.push(MouseInput{x, y, MouseInputLeftUp})
			in.Cursor.Left = CursorReleased
			in.Cursor.Old = OldLeftUp
		}
	case MouseMiddle:
		if down {
			in.Cursor.Middle = CursorPressed
		} else {
			in.Cursor.Middle = CursorReleased
		}
	case MouseRight:
		if down {
			in.mouseQueue.push(MouseInput{x, y, MouseInputRightDown})
			in.Cursor.Right = CursorPressed
			in.Cursor.Old = OldRightDown
		} else {
			in.mouseQueue.push(MouseInput{x, y, MouseInputRightUp})
			in.Cursor.Right = CursorReleased
			in.Cursor.Old = OldRightUp
		}
	}
}

func (in *InputState) onKeyDown(sym Key, scancode Scancode) {
	in.LastKey = sym
	if int(scancode) >= 0 && int(scancode) < keyCount {
		in.KeysPressed[scancode] = 1
	}
}

// DequeueMouseInput pops the oldest queued click.
func (in *InputState) DequeueMouseInput() (MouseInput, bool) {
	return in.mouseQueue.pop()
}

// KeyDown reports whether the key is held according to the last keyboard
// state snapshot.
func (in *InputState) KeyDown(sc Scancode) bool {
	return int(sc) >= 0 && int(sc) < len(in.KeysState) && in.KeysState[sc] != 0
}

type ShortcutCommand int

const (
	ShortcutNone ShortcutCommand = iota
	ShortcutZoomViewIn
	ShortcutZoomViewOut
	ShortcutScreenshot
)

func (c ShortcutCommand) String() string {
	switch c {
	case ShortcutZoomViewIn:
		return "zoomIn"
	case ShortcutZoomViewOut:
		return "zoomOut"
	case ShortcutScreenshot:
		return "screenshot"
	}
	return ""
}
