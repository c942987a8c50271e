package main

import (
	_ "embed" // Support for go:embed resources
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

//go:embed resources/defaultConfig.ini
var defaultConfig []byte

// Sentinel for sizes that have not been configured yet.
const unsetSize = -1

type FullscreenMode int

const (
	Windowed FullscreenMode = iota
	Fullscreen
	FullscreenDesktop
)

func (m FullscreenMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	case FullscreenDesktop:
		return "fullscreen desktop"
	}
	return fmt.Sprintf("FullscreenMode(%d)", int(m))
}

// Config represents the top-level config structure.
type Config struct {
	Def     string    `ini:"-"`
	IniFile *ini.File `ini:"-"`
	General struct {
		WindowWidth         int  `ini:"WindowWidth"`
		WindowHeight        int  `ini:"WindowHeight"`
		FullscreenWidth     int  `ini:"FullscreenWidth"`
		FullscreenHeight    int  `ini:"FullscreenHeight"`
		FullscreenMode      int  `ini:"FullscreenMode"`
		AllowAnyAspectRatio bool `ini:"AllowAnyAspectRatio"`
	} `ini:"General"`
	Config struct {
		WindowTitle      string `ini:"WindowTitle"`
		Script           string `ini:"Script"`
		Framerate        int    `ini:"Framerate"`
		ScreenshotFolder string `ini:"ScreenshotFolder"`
		DisplayLog       string `ini:"DisplayLog"`
	} `ini:"Config"`
	Debug struct {
		LogEvents bool `ini:"LogEvents"`
	} `ini:"Debug"`
}

// Loads and parses the INI file into a Config struct. The embedded defaults
// are layered under the user's file. An empty def keeps the config in memory
// only.
func loadConfig(def string) (*Config, error) {
	options := ini.LoadOptions{
		Insensitive:             false,
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: true,
		AllowShadows:            false,
	}

	var iniFile *ini.File
	var err error
	if _, statErr := os.Stat(def); def == "" || statErr != nil {
		iniFile, err = ini.LoadSources(options, defaultConfig)
	} else {
		iniFile, err = ini.LoadSources(options, defaultConfig, def)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %v", err)
	}

	var c Config
	if err := iniFile.MapTo(&c); err != nil {
		return nil, fmt.Errorf("failed to map config: %v", err)
	}
	c.Def = def
	c.IniFile = iniFile
	c.normalize()
	if def != "" {
		if err := c.Save(def); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Normalize values
func (c *Config) normalize() {
	if m := c.General.FullscreenMode; m < int(Windowed) || m > int(FullscreenDesktop) {
		c.SetValueUpdate("General.FullscreenMode", int(Windowed))
	}
	if c.Config.Framerate < 1 || c.Config.Framerate > 240 {
		c.SetValueUpdate("Config.Framerate", 40)
	}
	for _, q := range []string{"General.WindowWidth", "General.WindowHeight",
		"General.FullscreenWidth", "General.FullscreenHeight"} {
		if v, _ := c.GetValue(q); v != nil && v.(int64) <= 0 && v.(int64) != unsetSize {
			c.SetValueUpdate(q, unsetSize)
		}
	}

	path := strings.TrimSpace(c.Config.ScreenshotFolder)
	if path != "" {
		path = strings.ReplaceAll(path, "\\", "/")
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		if path != c.Config.ScreenshotFolder {
			c.SetValueUpdate("Config.ScreenshotFolder", path)
		}
	}
}

// GetValue retrieves the value based on the query string.
func (c *Config) GetValue(query string) (interface{}, error) {
	return GetValue(c, query)
}

// SetValueUpdate sets the value based on the query string and updates the IniFile.
func (c *Config) SetValueUpdate(query string, value interface{}) error {
	return SetValueUpdate(c, c.IniFile, query, value)
}

// Save writes the current IniFile to disk, preserving comments and syntax.
func (c *Config) Save(file string) error {
	return SaveINI(c.IniFile, file)
}

func (c *Config) fullscreenMode() FullscreenMode {
	return FullscreenMode(c.General.FullscreenMode)
}

// Display settings

func (c *Config) WindowSize() (int, int) {
	return c.General.WindowWidth, c.General.WindowHeight
}

func (c *Config) SetWindowSize(w, h int) {
	c.SetValueUpdate("General.WindowWidth", w)
	c.SetValueUpdate("General.WindowHeight", h)
}

func (c *Config) FullscreenSize() (int, int) {
	return c.General.FullscreenWidth, c.General.FullscreenHeight
}

func (c *Config) SetFullscreenSize(w, h int) {
	c.SetValueUpdate("General.FullscreenWidth", w)
	c.SetValueUpdate("General.FullscreenHeight", h)
}

// Persist saves the configuration to the file it was loaded from. In memory
// configurations are not written anywhere.
func (c *Config) Persist() error {
	if c.Def == "" {
		return nil
	}
	return c.Save(c.Def)
}
