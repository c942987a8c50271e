package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// sdlDriver runs the platform layer on an SDL window with a software surface.
type sdlDriver struct {
	window  *sdl.Window
	cursors [shapeCount]*sdl.Cursor
	hidden  bool
}

func newSDLDriver() (*sdlDriver, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("failed to initialise SDL: %w", err)
	}
	return &sdlDriver{}, nil
}

func (d *sdlDriver) CreateWindow(title string, width, height int) error {
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	d.window = window

	systemCursors := [shapeCount]sdl.SystemCursor{
		shapeArrow:     sdl.SYSTEM_CURSOR_ARROW,
		shapeHidden:    sdl.SYSTEM_CURSOR_ARROW,
		shapeHand:      sdl.SYSTEM_CURSOR_HAND,
		shapeCrosshair: sdl.SYSTEM_CURSOR_CROSSHAIR,
		shapeWait:      sdl.SYSTEM_CURSOR_WAIT,
		shapeSizeNS:    sdl.SYSTEM_CURSOR_SIZENS,
		shapeSizeNWSE:  sdl.SYSTEM_CURSOR_SIZENWSE,
		shapeNo:        sdl.SYSTEM_CURSOR_NO,
	}
	for i, id := range systemCursors {
		d.cursors[i] = sdl.CreateSystemCursor(id)
	}

	// SDL starts with text input enabled.
	sdl.StopTextInput()
	return nil
}

func (d *sdlDriver) DisplayModes() (Resolution, []Resolution, error) {
	display, err := d.window.GetDisplayIndex()
	if err != nil {
		return Resolution{}, nil, err
	}
	desktop, err := sdl.GetDesktopDisplayMode(display)
	if err != nil {
		return Resolution{}, nil, err
	}
	n, err := sdl.GetNumDisplayModes(display)
	if err != nil {
		return Resolution{}, nil, err
	}
	modes := make([]Resolution, 0, n)
	for i := 0; i < n; i++ {
		mode, err := sdl.GetDisplayMode(display, i)
		if err != nil {
			continue
		}
		modes = append(modes, Resolution{int(mode.W), int(mode.H)})
	}
	return Resolution{int(desktop.W), int(desktop.H)}, modes, nil
}

func (d *sdlDriver) SetWindowSize(width, height int) {
	d.window.SetSize(int32(width), int32(height))
}

func (d *sdlDriver) SetFullscreen(mode FullscreenMode) error {
	var flags uint32
	switch mode {
	case Fullscreen:
		flags = uint32(sdl.WINDOW_FULLSCREEN)
	case FullscreenDesktop:
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	return d.window.SetFullscreen(flags)
}

func (d *sdlDriver) PlainWindowed() bool {
	const mask = uint32(sdl.WINDOW_MAXIMIZED | sdl.WINDOW_MINIMIZED |
		sdl.WINDOW_FULLSCREEN | sdl.WINDOW_FULLSCREEN_DESKTOP)
	return uint32(d.window.GetFlags())&mask == 0
}

func (d *sdlDriver) SetCursor(id CursorID) {
	shape := id.shape()
	if shape == shapeHidden {
		if !d.hidden {
			sdl.ShowCursor(sdl.DISABLE)
			d.hidden = true
		}
		return
	}
	if d.hidden {
		sdl.ShowCursor(sdl.ENABLE)
		d.hidden = false
	}
	if c := d.cursors[shape]; c != nil {
		sdl.SetCursor(c)
	}
}

func (d *sdlDriver) StartTextInput() { sdl.StartTextInput() }
func (d *sdlDriver) StopTextInput()  { sdl.StopTextInput() }

func (d *sdlDriver) KeyboardState() []uint8 {
	return sdl.GetKeyboardState()
}

func (d *sdlDriver) KeyFromScancode(sc Scancode) Key {
	return sdl.GetKeyFromScancode(sc)
}

func (d *sdlDriver) PollEvents(h EventHandler) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case sdl.QuitEvent:
			h.OnQuit()
		case sdl.WindowEvent:
			switch t.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				h.OnResize(int(t.Data1), int(t.Data2))
			case sdl.WINDOWEVENT_CLOSE:
				h.OnQuit()
			}
		case sdl.MouseMotionEvent:
			h.OnMouseMotion(int(t.X), int(t.Y))
		case sdl.MouseWheelEvent:
			h.OnMouseWheel(int(t.Y))
		case sdl.MouseButtonEvent:
			button, ok := sdlMouseButton(t.Button)
			if !ok {
				continue
			}
			h.OnMouseButton(button, t.State == sdl.PRESSED, int(t.X), int(t.Y))
		case sdl.KeyboardEvent:
			if t.State == sdl.PRESSED {
				h.OnKeyDown(t.Keysym.Sym, t.Keysym.Scancode, ModifierKey(t.Keysym.Mod))
			}
		case sdl.TextInputEvent:
			if len(t.Text) > 0 {
				h.OnTextInput(t.Text)
			}
		case sdl.MultiGestureEvent:
			h.OnMultiGesture(t.Timestamp, int(t.NumFingers), t.DDist)
		}
	}
}

// sdlMouseButton maps the buttons the engine tracks. X1 and X2 are ignored.
func sdlMouseButton(b sdl.Button) (MouseButton, bool) {
	switch b {
	case sdl.ButtonLeft:
		return MouseLeft, true
	case sdl.ButtonMiddle:
		return MouseMiddle, true
	case sdl.ButtonRight:
		return MouseRight, true
	}
	return 0, false
}

func (d *sdlDriver) CreateIndexedSurface(width, height int) (IndexedSurface, error) {
	surface, err := sdl.CreateRGBSurface(0, int32(width), int32(height), 8, 0, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	return &sdlSurface{surface}, nil
}

func (d *sdlDriver) CreatePalette(ncolors int) (SurfacePalette, error) {
	palette, err := sdl.AllocPalette(ncolors)
	if err != nil {
		return nil, err
	}
	return &sdlPalette{palette}, nil
}

func (d *sdlDriver) HasWindowSurface() bool {
	if d.window == nil {
		return false
	}
	surface, err := d.window.GetSurface()
	return err == nil && surface != nil
}

func (d *sdlDriver) PresentSurface(src IndexedSurface) error {
	s, ok := src.(*sdlSurface)
	if !ok {
		return fmt.Errorf("surface %T was not created by this driver", src)
	}
	dst, err := d.window.GetSurface()
	if err != nil {
		return err
	}
	if err := s.Surface.Blit(nil, dst, nil); err != nil {
		return err
	}
	return d.window.UpdateSurface()
}

func (d *sdlDriver) Destroy() {
	for i, c := range d.cursors {
		if c != nil {
			sdl.FreeCursor(c)
			d.cursors[i] = nil
		}
	}
	if d.window != nil {
		d.window.Destroy()
		d.window = nil
	}
	sdl.Quit()
}

type sdlSurface struct {
	*sdl.Surface
}

func (s *sdlSurface) Width() int  { return int(s.W) }
func (s *sdlSurface) Height() int { return int(s.H) }
func (s *sdlSurface) Pitch() int  { return int(s.Surface.Pitch) }

func (s *sdlSurface) SetPalette(p SurfacePalette) error {
	sp, ok := p.(*sdlPalette)
	if !ok {
		return fmt.Errorf("palette %T was not created by this driver", p)
	}
	return s.Surface.SetPalette(sp.Palette)
}

type sdlPalette struct {
	*sdl.Palette
}

func (p *sdlPalette) SetColors(colors []Color) error {
	return p.Palette.SetColors(colors)
}
