package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Aspect ratios closer than this are considered equal.
const aspectRatioTolerance = 0.0001

// Returned by Closest when the catalog is empty.
var fallbackResolution = Resolution{640, 480}

type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Resolution) Area() int {
	return r.Width * r.Height
}

func (r Resolution) aspect() float32 {
	return float32(r.Width) / float32(r.Height)
}

func (r Resolution) valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// DisplaySettings is the configuration store consulted and updated by the
// catalog and the framebuffer. Unset sizes are reported as -1.
type DisplaySettings interface {
	WindowSize() (int, int)
	SetWindowSize(w, h int)
	FullscreenSize() (int, int)
	SetFullscreenSize(w, h int)
	Persist() error
}

// ResolutionCatalog holds the fullscreen resolutions offered by the display,
// ascending by area and free of duplicates.
type ResolutionCatalog struct {
	resolutions []Resolution
}

func resolutionLess(a, b Resolution) bool {
	if a.Area() != b.Area() {
		return a.Area() < b.Area()
	}
	// Only reachable when any aspect ratio is allowed (e.g. 800x600 and 600x800).
	if a.Width != b.Width {
		return a.Width < b.Width
	}
	return a.Height < b.Height
}

// Refresh rebuilds the catalog from the modes reported by the display. The
// previous content is discarded even when the result is empty.
func (c *ResolutionCatalog) Refresh(desktop Resolution, modes []Resolution,
	allowAnyAspectRatio bool, settings DisplaySettings) error {
	if !desktop.valid() {
		return fmt.Errorf("invalid desktop mode %v", desktop)
	}
	desktopAspect := desktop.aspect()

	res := make([]Resolution, 0, len(modes))
	for _, m := range modes {
		if !m.valid() {
			continue
		}
		if allowAnyAspectRatio || math.Abs(float64(desktopAspect-m.aspect())) < aspectRatioTolerance {
			res = append(res, m)
		}
	}

	slices.SortStableFunc(res, resolutionLess)
	res = slices.CompactFunc(res, func(a, b Resolution) bool { return a == b })
	c.resolutions = res

	if len(res) == 0 {
		return ErrEmptyCatalog
	}

	if settings != nil {
		if w, h := settings.FullscreenSize(); w == -1 || h == -1 {
			largest := c.Largest()
			settings.SetFullscreenSize(largest.Width, largest.Height)
		}
	}
	return nil
}

// Closest returns the exact match for the requested size if the catalog has
// one, otherwise the first entry whose area is nearest to it.
func (c *ResolutionCatalog) Closest(width, height int) Resolution {
	if len(c.resolutions) == 0 {
		return fallbackResolution
	}
	target := width * height
	best, bestDiff := -1, 0
	for i, r := range c.resolutions {
		if r.Width == width && r.Height == height {
			return r
		}
		diff := r.Area() - target
		if diff < 0 {
			diff = -diff
		}
		// strict comparison keeps the earliest entry on ties
		if best == -1 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return c.resolutions[best]
}

func (c *ResolutionCatalog) Len() int {
	return len(c.resolutions)
}

// Resolutions returns a copy of the catalog.
func (c *ResolutionCatalog) Resolutions() []Resolution {
	return slices.Clone(c.resolutions)
}

// Largest returns the last entry, or the fallback when the catalog is empty.
func (c *ResolutionCatalog) Largest() Resolution {
	if len(c.resolutions) == 0 {
		return fallbackResolution
	}
	return c.resolutions[len(c.resolutions)-1]
}
