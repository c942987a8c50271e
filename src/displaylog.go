package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// displayLog keeps a small JSON record of the display modes seen across
// sessions. An empty path disables it.
type displayLog struct {
	path string
}

func (d *displayLog) load() []byte {
	data, _ := os.ReadFile(d.path)
	if len(data) == 0 || !gjson.ValidBytes(data) {
		data = []byte(`{}`)
	}
	return data
}

// recordCatalog stores the result of a catalog refresh.
func (d *displayLog) recordCatalog(desktop Resolution, c *ResolutionCatalog, allowAny bool) error {
	if d.path == "" {
		return nil
	}
	data := d.load()

	count := gjson.GetBytes(data, "refreshes").Int()
	data, _ = sjson.SetBytes(data, "refreshes", count+1)
	data, _ = sjson.SetBytes(data, "updated", time.Now().Format(time.RFC3339))

	// Remember the previous desktop when it changes, e.g. a new monitor.
	if prev := gjson.GetBytes(data, "desktop.width"); prev.Exists() &&
		(int(prev.Int()) != desktop.Width || int(gjson.GetBytes(data, "desktop.height").Int()) != desktop.Height) {
		data, _ = sjson.SetRawBytes(data, "previousDesktop", []byte(gjson.GetBytes(data, "desktop").Raw))
	}
	data, _ = sjson.SetBytes(data, "desktop", desktop)
	data, _ = sjson.SetBytes(data, "allowAnyAspectRatio", allowAny)

	modes := make([]string, 0, c.Len())
	for _, r := range c.Resolutions() {
		modes = append(modes, r.String())
	}
	data, _ = sjson.SetBytes(data, "modes", modes)
	if c.Len() > 0 {
		data, _ = sjson.SetBytes(data, "largest", c.Largest())
	} else if gjson.GetBytes(data, "largest").Exists() {
		data, _ = sjson.DeleteBytes(data, "largest")
	}

	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(d.path, data, 0o644)
}

// desktop returns the desktop size stored by the last refresh.
func (d *displayLog) desktop() (Resolution, bool) {
	if d.path == "" {
		return Resolution{}, false
	}
	r := gjson.GetBytes(d.load(), "desktop")
	if !r.Exists() {
		return Resolution{}, false
	}
	return Resolution{int(r.Get("width").Int()), int(r.Get("height").Int())}, true
}
