package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "poles.yaml"

// Load loads the application configuration.
// Search order: customPath -> ~/.poles/config.yaml -> ./configs/poles.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads, parses and validates one config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".poles", "config.yaml")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
