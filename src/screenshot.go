package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

const maxScreenshots = 999

// nextScreenshotPath returns the first free SCRn.BMP name in folder.
func nextScreenshotPath(folder string) (string, error) {
	for i := 1; i <= maxScreenshots; i++ {
		path := filepath.Join(folder, fmt.Sprintf("SCR%d.BMP", i))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no free screenshot slot in %s", folder)
}

// TakeScreenshot writes the visible framebuffer as an 8-bit BMP and returns
// its path.
func (s *System) TakeScreenshot() (string, error) {
	if s.fb.State() != FramebufferSized {
		return "", errors.New("framebuffer has no pixels")
	}
	folder := s.cfg.Config.ScreenshotFolder
	if folder == "" {
		folder = "."
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrap(err, "create screenshot folder")
	}
	path, err := nextScreenshotPath(folder)
	if err != nil {
		return "", err
	}
	if err := writeScreenshot(path, s.fb.Snapshot()); err != nil {
		return "", err
	}
	return path, nil
}

// writeScreenshot encodes img to path. A partly written file is removed.
func writeScreenshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create screenshot")
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
