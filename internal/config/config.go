// Package config provides YAML-based application configuration loading.
// Game rules are compile-time constants; this covers the frontends, logging,
// the SSH server and the lane theme.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-poles/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level application configuration.
type Config struct {
	Frontend string      `yaml:"frontend"` // Default frontend ID for "play"
	Sound    bool        `yaml:"sound"`    // Sound effects where the frontend supports them
	Log      LogConfig   `yaml:"log"`
	SSH      SSHConfig   `yaml:"ssh"`
	Theme    ThemeConfig `yaml:"theme"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr for servers, discarded during play
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.poles/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig defines lane glyphs and colors.
// Glyphs are one or two characters; colors are names accepted by core.ParseColor.
type ThemeConfig struct {
	Empty      string `yaml:"empty"`
	Pole       string `yaml:"pole"`
	Bird       string `yaml:"bird"`
	EmptyColor string `yaml:"empty_color"`
	PoleColor  string `yaml:"pole_color"`
	BirdColor  string `yaml:"bird_color"`
	FrameColor string `yaml:"frame_color"`
	TextColor  string `yaml:"text_color"`
}

// Validate checks the configuration for values the program cannot use.
func (c Config) Validate() error {
	if c.Frontend == "" {
		return fmt.Errorf("%w: frontend must be set", ErrInvalid)
	}
	if c.SSH.Address == "" {
		return fmt.Errorf("%w: ssh.address must be set", ErrInvalid)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalid)
	}

	glyphs := map[string]string{
		"theme.empty": c.Theme.Empty,
		"theme.pole":  c.Theme.Pole,
		"theme.bird":  c.Theme.Bird,
	}
	for name, g := range glyphs {
		if n := len([]rune(g)); n < 1 || n > 2 {
			return fmt.Errorf("%w: %s must be one or two characters, got %q", ErrInvalid, name, g)
		}
	}

	colors := map[string]string{
		"theme.empty_color": c.Theme.EmptyColor,
		"theme.pole_color":  c.Theme.PoleColor,
		"theme.bird_color":  c.Theme.BirdColor,
		"theme.frame_color": c.Theme.FrameColor,
		"theme.text_color":  c.Theme.TextColor,
	}
	for name, v := range colors {
		if _, ok := core.ParseColor(v); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, name, v)
		}
	}
	return nil
}
