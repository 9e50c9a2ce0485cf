package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/poles.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches the embedded defaults/poles.yaml.
func Default() Config {
	return Config{
		Frontend: "tui",
		Sound:    true,
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: ThemeConfig{
			Empty:      "· ",
			Pole:       "██",
			Bird:       "()",
			EmptyColor: "gray",
			PoleColor:  "green",
			BirdColor:  "bright-yellow",
			FrameColor: "gray",
			TextColor:  "bright-white",
		},
	}
}
