package main

// DrawPixelInfo describes the pixel buffer the renderer draws into.
type DrawPixelInfo struct {
	Bits          []byte
	X, Y          int
	Width, Height int
	// Padding bytes at the end of every row.
	Pitch int
}

// Stride is the full length of a row in bytes.
func (d DrawPixelInfo) Stride() int {
	return d.Width + d.Pitch
}

// Layout receives the new screen geometry whenever the framebuffer is resized.
type Layout interface {
	SetDrawPixelInfo(dpi DrawPixelInfo)
	ResizeGUI(width, height int)
	RelocateWindows(width, height int)
	InvalidateScreen()
}

const (
	dirtyBlockWidth  = 64
	dirtyBlockHeight = 8
)

// screenLayout tracks the drawing context and the grid of dirty blocks the
// renderer redraws.
type screenLayout struct {
	dpi           DrawPixelInfo
	width, height int
	blockColumns  int
	blockRows     int
	dirty         []bool
	resizeHooks   []func(w, h int)
}

func (l *screenLayout) SetDrawPixelInfo(dpi DrawPixelInfo) {
	l.dpi = dpi
}

func (l *screenLayout) DrawPixelInfo() DrawPixelInfo {
	return l.dpi
}

func (l *screenLayout) ResizeGUI(width, height int) {
	l.width, l.height = width, height
	l.blockColumns = (width >> 6) + 1
	l.blockRows = (height >> 3) + 1
	l.dirty = make([]bool, l.blockColumns*l.blockRows)
}

func (l *screenLayout) RelocateWindows(width, height int) {
	for _, f := range l.resizeHooks {
		f(width, height)
	}
}

func (l *screenLayout) onRelocate(f func(w, h int)) {
	l.resizeHooks = append(l.resizeHooks, f)
}

func (l *screenLayout) InvalidateScreen() {
	l.SetDirtyRect(0, 0, l.width, l.height)
}

// SetDirtyRect marks the blocks covering the rectangle for redraw. The
// rectangle is clipped to the screen.
func (l *screenLayout) SetDirtyRect(x, y, w, h int) {
	x0, y0 := Max(x, 0), Max(y, 0)
	x1, y1 := Min(x+w, l.width), Min(y+h, l.height)
	if x0 >= x1 || y0 >= y1 || len(l.dirty) == 0 {
		return
	}
	for r := y0 / dirtyBlockHeight; r <= (y1-1)/dirtyBlockHeight; r++ {
		for c := x0 / dirtyBlockWidth; c <= (x1-1)/dirtyBlockWidth; c++ {
			l.dirty[r*l.blockColumns+c] = true
		}
	}
}

// DirtyCount returns how many blocks are waiting to be redrawn.
func (l *screenLayout) DirtyCount() (n int) {
	for _, d := range l.dirty {
		if d {
			n++
		}
	}
	return
}

// ClearDirty is called once the dirty blocks have been redrawn.
func (l *screenLayout) ClearDirty() {
	for i := range l.dirty {
		l.dirty[i] = false
	}
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
