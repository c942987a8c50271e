package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// Window size used when the configuration has none.
const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 480
)

// WindowDriver is the windowing backend the platform layer runs on.
type WindowDriver interface {
	VideoDriver
	CreateWindow(title string, width, height int) error
	// DisplayModes returns the desktop mode and every mode of the display the
	// window is on.
	DisplayModes() (Resolution, []Resolution, error)
	SetWindowSize(width, height int)
	SetFullscreen(mode FullscreenMode) error
	SetCursor(id CursorID)
	StartTextInput()
	StopTextInput()
	PollEvents(h EventHandler)
	KeyboardState() []uint8
	// KeyFromScancode looks up the key the current layout puts on sc.
	KeyFromScancode(sc Scancode) Key
	Destroy()
}

// EventHandler receives the events drained by WindowDriver.PollEvents.
type EventHandler interface {
	OnQuit()
	OnResize(width, height int)
	OnMouseMotion(x, y int)
	OnMouseWheel(dy int)
	OnMouseButton(button MouseButton, down bool, x, y int)
	OnKeyDown(sym Key, scancode Scancode, mod ModifierKey)
	OnTextInput(text string)
	OnMultiGesture(timestamp uint32, fingers int, dDist float32)
}

// System is the platform context. Everything the engine used to read from
// fixed globals lives here and is reached through it.
type System struct {
	cfg        *Config
	driver     WindowDriver
	errLog     *log.Logger
	catalog    ResolutionCatalog
	fb         *Framebuffer
	layout     screenLayout
	input      InputState
	text       TextInput
	gesture    pinchZoom
	displayLog displayLog
	shortcut   func(ShortcutCommand)
	closeflag  bool
	// First error raised by an event handler during the current pump.
	pendingErr error
}

func newSystem(cfg *Config, driver WindowDriver, errLog *log.Logger) *System {
	s := &System{
		cfg:        cfg,
		driver:     driver,
		errLog:     errLog,
		displayLog: displayLog{path: cfg.Config.DisplayLog},
	}
	s.fb = newFramebuffer(driver, cfg, &s.layout, errLog)
	return s
}

func (s *System) windowSize() (int, int) {
	w, h := s.cfg.WindowSize()
	if w == unsetSize {
		w = defaultWindowWidth
	}
	if h == unsetSize {
		h = defaultWindowHeight
	}
	return w, h
}

// Init creates the window, the framebuffer and applies the configured
// fullscreen mode.
func (s *System) Init() error {
	w, h := s.windowSize()

	// Created windowed first so the display the window is on is known.
	if err := s.driver.CreateWindow(s.cfg.Config.WindowTitle, w, h); err != nil {
		return fatalVideo("init", "create window", err)
	}
	if err := s.fb.Resize(w, h); err != nil {
		return err
	}
	if err := s.UpdateFullscreenResolutions(); err != nil && !errors.Is(err, ErrEmptyCatalog) {
		return err
	}
	return s.SetFullscreenMode(s.cfg.fullscreenMode())
}

// UpdateFullscreenResolutions re-enumerates the display modes.
func (s *System) UpdateFullscreenResolutions() error {
	desktop, modes, err := s.driver.DisplayModes()
	if err != nil {
		return errors.Wrap(err, "query display modes")
	}
	if prev, ok := s.displayLog.desktop(); ok && prev != desktop {
		s.errLog.Printf("Desktop resolution changed from %v to %v", prev, desktop)
	}
	err = s.catalog.Refresh(desktop, modes, s.cfg.General.AllowAnyAspectRatio, s.cfg)
	if errors.Is(err, ErrEmptyCatalog) {
		s.errLog.Printf("No fullscreen resolution matches desktop %v", desktop)
	}
	if lerr := s.displayLog.recordCatalog(desktop, &s.catalog, s.cfg.General.AllowAnyAspectRatio); lerr != nil {
		s.errLog.Printf("Failed to update display log: %v", lerr)
	}
	return err
}

// SetFullscreenMode resizes the window for mode and switches to it.
func (s *System) SetFullscreenMode(mode FullscreenMode) error {
	switch mode {
	case Windowed, Fullscreen, FullscreenDesktop:
	default:
		return fmt.Errorf("unknown fullscreen mode %d", int(mode))
	}

	switch mode {
	case Fullscreen:
		// Changing the window size while fullscreen usually has no effect.
		if err := s.driver.SetFullscreen(Windowed); err != nil {
			s.errLog.Printf("Failed to leave fullscreen: %v", err)
		}
		if err := s.UpdateFullscreenResolutions(); err != nil && !errors.Is(err, ErrEmptyCatalog) {
			return err
		}
		r := s.catalog.Closest(s.cfg.FullscreenSize())
		s.driver.SetWindowSize(r.Width, r.Height)
	case Windowed:
		s.driver.SetWindowSize(s.windowSize())
	}

	if err := s.driver.SetFullscreen(mode); err != nil {
		return fatalVideo("fullscreen", fmt.Sprintf("switch to %v", mode), err)
	}
	return nil
}

// ToggleFullscreen switches between windowed and desktop fullscreen and
// remembers the choice.
func (s *System) ToggleFullscreen() error {
	target := Windowed
	if s.cfg.fullscreenMode() == Windowed {
		target = FullscreenDesktop
	}
	if err := s.SetFullscreenMode(target); err != nil {
		return err
	}
	s.cfg.SetValueUpdate("General.FullscreenMode", int(target))
	if err := s.cfg.Persist(); err != nil {
		s.errLog.Printf("Failed to save config: %v", err)
	}
	return nil
}

// ProcessMessages drains pending window events and refreshes the input state
// for this frame.
func (s *System) ProcessMessages() error {
	s.input.beginFrame()
	s.driver.PollEvents(s)
	s.input.endFrame(s.driver.KeyboardState())
	err := s.pendingErr
	s.pendingErr = nil
	return err
}

func (s *System) fail(err error) {
	if err != nil && s.pendingErr == nil {
		s.pendingErr = err
	}
}

func (s *System) logEvent(format string, v ...interface{}) {
	if s.cfg.Debug.LogEvents {
		s.errLog.Printf(format, v...)
	}
}

func (s *System) OnQuit() {
	s.logEvent("quit")
	s.closeflag = true
}

func (s *System) OnResize(width, height int) {
	s.logEvent("resize %dx%d", width, height)
	s.fail(s.fb.Resize(width, height))
}

func (s *System) OnMouseMotion(x, y int) {
	s.input.onMouseMotion(x, y)
}

func (s *System) OnMouseWheel(dy int) {
	s.logEvent("wheel %d", dy)
	s.input.onMouseWheel(dy)
}

func (s *System) OnMouseButton(button MouseButton, down bool, x, y int) {
	s.logEvent("mouse button %d down=%v at %d,%d", button, down, x, y)
	s.input.onMouseButton(button, down, x, y)
}

func (s *System) OnKeyDown(sym Key, scancode Scancode, mod ModifierKey) {
	s.logEvent("key %s (%d) mod %#x", KeyToString(sym), scancode, mod)
	if sym == KeyKPEnter {
		scancode = ScancodeReturn
	}
	s.input.onKeyDown(sym, scancode)

	if sym == KeyEnter && mod&ModAlt != 0 {
		s.fail(s.ToggleFullscreen())
		return
	}
	if sym == KeyF12 {
		s.dispatchShortcut(ShortcutScreenshot)
		return
	}
	s.text.handleKey(sym)
}

func (s *System) OnTextInput(text string) {
	s.logEvent("text %q", text)
	s.text.insert(text)
}

func (s *System) OnMultiGesture(timestamp uint32, fingers int, dDist float32) {
	if cmd := s.gesture.update(timestamp, fingers, dDist, s.fb.Width()); cmd != ShortcutNone {
		s.logEvent("gesture %v", cmd)
		s.dispatchShortcut(cmd)
	}
}

// SetShortcutHandler registers the receiver of shortcut commands.
func (s *System) SetShortcutHandler(f func(ShortcutCommand)) {
	s.shortcut = f
}

func (s *System) dispatchShortcut(cmd ShortcutCommand) {
	if cmd == ShortcutScreenshot {
		if path, err := s.TakeScreenshot(); err != nil {
			s.errLog.Printf("Screenshot failed: %v", err)
		} else {
			s.errLog.Printf("Screenshot saved to %s", path)
		}
	}
	if s.shortcut != nil {
		s.shortcut(cmd)
	}
}

// StartTextInput routes text events into buf until StopTextInput.
func (s *System) StartTextInput(buf []byte) {
	s.driver.StartTextInput()
	s.text.Start(buf)
}

func (s *System) StopTextInput() {
	s.driver.StopTextInput()
	s.text.Stop()
}

// ScancodeToKeycode maps a physical key to the engine's single byte key code.
// Letters are reported upper case, as the engine's shortcut tables expect.
func (s *System) ScancodeToKeycode(sc Scancode) int {
	return legacyKeycode(s.driver.KeyFromScancode(sc))
}

func (s *System) SetCursor(id CursorID) {
	s.driver.SetCursor(id)
}

func (s *System) shouldClose() bool {
	return s.closeflag
}

func (s *System) Close() {
	if s.fb != nil {
		s.fb.Close()
	}
	if s.driver != nil {
		s.driver.Destroy()
	}
}
