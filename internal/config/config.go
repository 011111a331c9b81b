// Package config provides YAML-based configuration for the runner's
// terminal front end. The simulation itself has no tunables.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete front-end configuration.
type Config struct {
	Seed       int64            `yaml:"seed"`
	Display    DisplayConfig    `yaml:"display"`
	Keys       KeyConfig        `yaml:"keys"`
	Log        LogConfig        `yaml:"log"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// DisplayConfig controls how world units map onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
	ShowHelp   bool    `yaml:"show_help"`
}

// KeyConfig lists the key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("up", "ctrl+c", " ").
type KeyConfig struct {
	Jump       []string `yaml:"jump"`
	Start      []string `yaml:"start"`
	Screenshot []string `yaml:"screenshot"`
	Quit       []string `yaml:"quit"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // "-" logs to stderr
}

// ScreenshotConfig controls where Ctrl+S frames are written.
type ScreenshotConfig struct {
	Dir        string  `yaml:"dir"`
	PNGScale   float64 `yaml:"png_scale"`
	ThumbWidth int     `yaml:"thumb_width"` // 0 disables thumbnails
}

// Validate reports settings the front end cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Display.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("display.cell_width must be positive, got %v", c.Display.CellWidth))
	}
	if c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display.cell_height must be positive, got %v", c.Display.CellHeight))
	}
	if len(c.Keys.Jump) == 0 {
		errs = append(errs, errors.New("keys.jump must list at least one key"))
	}
	if len(c.Keys.Start) == 0 {
		errs = append(errs, errors.New("keys.start must list at least one key"))
	}
	if len(c.Keys.Quit) == 0 {
		errs = append(errs, errors.New("keys.quit must list at least one key"))
	}
	if c.Screenshot.PNGScale <= 0 {
		errs = append(errs, fmt.Errorf("screenshot.png_scale must be positive, got %v", c.Screenshot.PNGScale))
	}
	if c.Screenshot.ThumbWidth < 0 {
		errs = append(errs, fmt.Errorf("screenshot.thumb_width must not be negative, got %d", c.Screenshot.ThumbWidth))
	}
	return errors.Join(errs...)
}
