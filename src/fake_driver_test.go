package main

import (
	"errors"
	"io"
	"log"
)

type fakeSurface struct {
	width, height, pitch int
	pixels               []byte
	palette              *fakePalette
	mustLock             bool
	lockErr              error
	locks, unlocks       int
	freed                bool
}

func (s *fakeSurface) Width() int     { return s.width }
func (s *fakeSurface) Height() int    { return s.height }
func (s *fakeSurface) Pitch() int     { return s.pitch }
func (s *fakeSurface) MustLock() bool { return s.mustLock }
func (s *fakeSurface) Pixels() []byte { return s.pixels }
func (s *fakeSurface) Free()          { s.freed = true }

func (s *fakeSurface) Lock() error {
	if s.lockErr != nil {
		return s.lockErr
	}
	s.locks++
	return nil
}

func (s *fakeSurface) Unlock() { s.unlocks++ }

func (s *fakeSurface) SetPalette(p SurfacePalette) error {
	s.palette = p.(*fakePalette)
	return nil
}

type fakePalette struct {
	colors []Color
	setErr error
	freed  bool
}

func (p *fakePalette) SetColors(colors []Color) error {
	if p.setErr != nil {
		return p.setErr
	}
	copy(p.colors, colors)
	return nil
}

func (p *fakePalette) Free() { p.freed = true }

// fakeDriver records what the platform layer asks of the window system.
type fakeDriver struct {
	// Row padding added to every surface.
	padding int

	surfaces []*fakeSurface
	palettes []*fakePalette

	surfaceErr, paletteErr, presentErr, fullscreenErr, createErr error
	noWindowSurface                                            bool
	maximized                                                  bool

	desktop Resolution
	modes   []Resolution

	windowTitle   string
	windowSize    Resolution
	fullscreen    FullscreenMode
	fullscreenLog []FullscreenMode
	cursor        CursorID
	textInput     bool
	presented     [][]byte
	events        []func(EventHandler)
	keys          []uint8
	keymap        map[Scancode]Key
	destroyed     bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		desktop: Resolution{1920, 1080},
		modes: []Resolution{
			{1920, 1080}, {1280, 720}, {1024, 768}, {1600, 900}, {1280, 720}, {800, 600},
		},
		keys: make([]uint8, 512),
		keymap: map[Scancode]Key{
			4:  'a',
			40: KeyEnter,
			69: KeyF12,
		},
	}
}

func (d *fakeDriver) lastSurface() *fakeSurface {
	if len(d.surfaces) == 0 {
		return nil
	}
	return d.surfaces[len(d.surfaces)-1]
}

func (d *fakeDriver) lastPalette() *fakePalette {
	if len(d.palettes) == 0 {
		return nil
	}
	return d.palettes[len(d.palettes)-1]
}

func (d *fakeDriver) CreateIndexedSurface(width, height int) (IndexedSurface, error) {
	if d.surfaceErr != nil {
		return nil, d.surfaceErr
	}
	pitch := width + d.padding
	s := &fakeSurface{width: width, height: height, pitch: pitch, pixels: make([]byte, pitch*height)}
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

func (d *fakeDriver) CreatePalette(ncolors int) (SurfacePalette, error) {
	if d.paletteErr != nil {
		return nil, d.paletteErr
	}
	p := &fakePalette{colors: make([]Color, ncolors)}
	d.palettes = append(d.palettes, p)
	return p, nil
}

func (d *fakeDriver) HasWindowSurface() bool { return !d.noWindowSurface }

func (d *fakeDriver) PresentSurface(src IndexedSurface) error {
	if d.presentErr != nil {
		return d.presentErr
	}
	d.presented = append(d.presented, append([]byte(nil), src.Pixels()...))
	return nil
}

func (d *fakeDriver) PlainWindowed() bool {
	return !d.maximized && d.fullscreen == Windowed
}

func (d *fakeDriver) CreateWindow(title string, width, height int) error {
	if d.createErr != nil {
		return d.createErr
	}
	d.windowTitle = title
	d.windowSize = Resolution{width, height}
	return nil
}

func (d *fakeDriver) DisplayModes() (Resolution, []Resolution, error) {
	return d.desktop, d.modes, nil
}

func (d *fakeDriver) SetWindowSize(width, height int) {
	d.windowSize = Resolution{width, height}
}

func (d *fakeDriver) SetFullscreen(mode FullscreenMode) error {
	if d.fullscreenErr != nil {
		return d.fullscreenErr
	}
	d.fullscreen = mode
	d.fullscreenLog = append(d.fullscreenLog, mode)
	return nil
}

func (d *fakeDriver) SetCursor(id CursorID) { d.cursor = id }
func (d *fakeDriver) StartTextInput()       { d.textInput = true }
func (d *fakeDriver) StopTextInput()        { d.textInput = false }
func (d *fakeDriver) KeyboardState() []uint8 {
	return d.keys
}

func (d *fakeDriver) KeyFromScancode(sc Scancode) Key {
	if k, ok := d.keymap[sc]; ok {
		return k
	}
	return KeyUnknown
}

// queue adds an event delivered on the next PollEvents.
func (d *fakeDriver) queue(e func(EventHandler)) {
	d.events = append(d.events, e)
}

func (d *fakeDriver) PollEvents(h EventHandler) {
	events := d.events
	d.events = nil
	for _, e := range events {
		e(h)
	}
}

func (d *fakeDriver) Destroy() { d.destroyed = true }

// memSettings is an in-memory DisplaySettings.
type memSettings struct {
	window, fullscreen Resolution
	persisted          int
	persistErr         error
}

func newMemSettings() *memSettings {
	return &memSettings{window: Resolution{-1, -1}, fullscreen: Resolution{-1, -1}}
}

func (m *memSettings) WindowSize() (int, int)     { return m.window.Width, m.window.Height }
func (m *memSettings) SetWindowSize(w, h int)     { m.window = Resolution{w, h} }
func (m *memSettings) FullscreenSize() (int, int) { return m.fullscreen.Width, m.fullscreen.Height }
func (m *memSettings) SetFullscreenSize(w, h int) { m.fullscreen = Resolution{w, h} }
func (m *memSettings) Persist() error {
	m.persisted++
	return m.persistErr
}

var errFake = errors.New("fake failure")

func discardLog() *log.Logger {
	return log.New(io.Discard, "", 0)
}
