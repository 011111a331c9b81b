package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/dino.yaml.
func Default() Config {
	return Config{
		Seed: 0,
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
			ShowHelp:   true,
		},
		Keys: KeyConfig{
			Jump:       []string{" ", "up", "w", "k"},
			Start:      []string{"enter", "r"},
			Screenshot: []string{"ctrl+s"},
			Quit:       []string{"q", "ctrl+c", "esc"},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.dino/dino.log",
		},
		Screenshot: ScreenshotConfig{
			Dir:        "~/.dino/screenshots",
			PNGScale:   1.0,
			ThumbWidth: 160,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
