package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

const paletteSize = 256

type Color = sdl.Color

// IndexedSurface is an 8-bit palette indexed output surface owned by the
// driver.
type IndexedSurface interface {
	Width() int
	Height() int
	// Row stride in bytes, at least Width.
	Pitch() int
	MustLock() bool
	Lock() error
	Unlock()
	Pixels() []byte
	SetPalette(p SurfacePalette) error
	Free()
}

type SurfacePalette interface {
	// SetColors replaces the whole palette starting at index 0.
	SetColors(colors []Color) error
	Free()
}

// VideoDriver is the part of the window backend the framebuffer depends on.
type VideoDriver interface {
	CreateIndexedSurface(width, height int) (IndexedSurface, error)
	CreatePalette(ncolors int) (SurfacePalette, error)
	// HasWindowSurface reports whether the window currently has a surface to
	// present to.
	HasWindowSurface() bool
	// PresentSurface blits src over the whole window and presents it.
	PresentSurface(src IndexedSurface) error
	// PlainWindowed is true when the window is neither maximized, minimized
	// nor fullscreen.
	PlainWindowed() bool
}

type framebufferState int

const (
	FramebufferUninitialized framebufferState = iota
	FramebufferSized
	FramebufferClosed
)

// Framebuffer owns the engine's indexed pixel buffer together with the output
// surface and palette it is blitted through.
//
// The slice returned by Buffer is handed to renderers, which write pixels
// into it directly once per frame. There is exactly one writer per frame and
// no further synchronization.
type Framebuffer struct {
	driver   VideoDriver
	settings DisplaySettings
	layout   Layout
	errLog   *log.Logger

	state         framebufferState
	surface       IndexedSurface
	palette       SurfacePalette
	colors        [paletteSize]Color
	buffer        []byte
	width, height int
	pitch         int
}

func newFramebuffer(driver VideoDriver, settings DisplaySettings, layout Layout, errLog *log.Logger) *Framebuffer {
	return &Framebuffer{
		driver:   driver,
		settings: settings,
		layout:   layout,
		errLog:   errLog,
	}
}

func (fb *Framebuffer) State() framebufferState { return fb.state }
func (fb *Framebuffer) Width() int              { return fb.width }
func (fb *Framebuffer) Height() int             { return fb.height }
func (fb *Framebuffer) Pitch() int              { return fb.pitch }

// Buffer returns the live pixel buffer. It is replaced on every resize.
func (fb *Framebuffer) Buffer() []byte { return fb.buffer }

func (fb *Framebuffer) release() {
	if fb.surface != nil {
		fb.surface.Free()
		fb.surface = nil
	}
	if fb.palette != nil {
		fb.palette.Free()
		fb.palette = nil
	}
}

// Resize replaces the output surface and palette with ones of the given size
// and carries the pixel buffer over. Bytes that existed before keep their
// value, new bytes are zero.
func (fb *Framebuffer) Resize(width, height int) error {
	if fb.state == FramebufferClosed {
		return fmt.Errorf("resize %dx%d: framebuffer is closed", width, height)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize: invalid size %dx%d", width, height)
	}

	fb.release()

	surface, err := fb.driver.CreateIndexedSurface(width, height)
	if err != nil {
		return fatalVideo("resize", fmt.Sprintf("create %dx%d surface", width, height), err)
	}
	palette, err := fb.driver.CreatePalette(paletteSize)
	if err != nil {
		surface.Free()
		return fatalVideo("resize", "allocate palette", err)
	}
	fb.surface, fb.palette = surface, palette
	if err := surface.SetPalette(palette); err != nil {
		return fatalVideo("resize", "bind palette", err)
	}
	if err := palette.SetColors(fb.colors[:]); err != nil {
		return fatalVideo("resize", "restore palette", err)
	}

	fb.pitch = surface.Pitch()
	buffer := make([]byte, fb.pitch*height)
	// make zeroes the tail past the copied prefix
	copy(buffer, fb.buffer)
	fb.buffer = buffer
	fb.width, fb.height = width, height
	fb.state = FramebufferSized

	if fb.layout != nil {
		fb.layout.SetDrawPixelInfo(DrawPixelInfo{
			Bits:   fb.buffer,
			Width:  width,
			Height: height,
			Pitch:  fb.pitch - width,
		})
		fb.layout.ResizeGUI(width, height)
		fb.layout.RelocateWindows(width, height)
		fb.layout.InvalidateScreen()
	}

	// Only resizes made by the user in a normal window are remembered.
	if fb.settings != nil && fb.driver.PlainWindowed() {
		if w, h := fb.settings.WindowSize(); w != width || h != height {
			fb.settings.SetWindowSize(width, height)
			if err := fb.settings.Persist(); err != nil && fb.errLog != nil {
				fb.errLog.Printf("Failed to save window size: %v", err)
			}
		}
	}
	return nil
}

// UpdatePalette applies count entries starting at start. colors holds 256
// packed B,G,R,A quads indexed by colour index; alpha is discarded.
func (fb *Framebuffer) UpdatePalette(colors []byte, start, count int) error {
	if fb.palette == nil || !fb.driver.HasWindowSurface() {
		return fatalVideo("palette update", "no output surface", nil)
	}
	if start < 0 || count < 0 || start+count > paletteSize {
		return fmt.Errorf("palette range %d+%d out of bounds", start, count)
	}
	if len(colors) < (start+count)*4 {
		return fmt.Errorf("palette data too short: %d bytes for %d entries", len(colors), start+count)
	}
	for i := start; i < start+count; i++ {
		q := colors[i*4 : i*4+4]
		fb.colors[i] = Color{R: q[2], G: q[1], B: q[0], A: 0}
	}
	if err := fb.palette.SetColors(fb.colors[:]); err != nil {
		return fatalVideo("palette update", "set colors", err)
	}
	return nil
}

// Palette returns the colours last applied to the palette.
func (fb *Framebuffer) Palette() [paletteSize]Color {
	return fb.colors
}

// Draw copies the pixel buffer to the output surface and presents it.
func (fb *Framebuffer) Draw() error {
	if fb.surface == nil {
		return fatalVideo("draw", "no output surface", nil)
	}
	if err := fb.copyToSurface(); err != nil {
		// a surface that cannot be locked this frame is skipped, not fatal
		if fb.errLog != nil {
			fb.errLog.Printf("Locking surface failed: %v", err)
		}
		return nil
	}
	if err := fb.driver.PresentSurface(fb.surface); err != nil {
		return fatalVideo("draw", "blit window surface", err)
	}
	return nil
}

func (fb *Framebuffer) copyToSurface() error {
	if fb.surface.MustLock() {
		if err := fb.surface.Lock(); err != nil {
			return err
		}
		defer fb.surface.Unlock()
	}
	copy(fb.surface.Pixels(), fb.buffer[:fb.pitch*fb.height])
	return nil
}

// Close frees the output surface and palette. The framebuffer cannot be
// resized afterwards.
func (fb *Framebuffer) Close() {
	fb.release()
	fb.buffer = nil
	fb.state = FramebufferClosed
}

// Snapshot copies the visible pixels and the current palette into an image.
func (fb *Framebuffer) Snapshot() *image.Paletted {
	pal := make(color.Palette, paletteSize)
	for i, c := range fb.colors {
		pal[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	img := image.NewPaletted(image.Rect(0, 0, fb.width, fb.height), pal)
	for y := 0; y < fb.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+fb.width], fb.buffer[y*fb.pitch:])
	}
	return img
}
