// Package config provides configuration loading and management for rowpilot.
//
// Configuration is loaded using Viper, supporting YAML config files and environment
// variable overrides. The defaults reproduce the behavior of the desktop tool
// rowpilot replaces, so no config file is needed.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//   - [Preferences] holds the user's language and theme
//
// Configuration priority (highest to lowest):
//  1. Environment variables (ROWPILOT_ prefix, e.g. ROWPILOT_RUN_STOP_KEY)
//  2. Config file specified by ROWPILOT_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/rowpilot/config.yaml
//     - macOS: ~/Library/Application Support/rowpilot/config.yaml
//     - Windows: %APPDATA%\rowpilot\config.yaml
//  4. ./rowpilot.yaml
//  5. [DefaultConfig] defaults
package config

import (
	"os"
	"path/filepath"
)

// AppName names the user config directory.
const AppName = "rowpilot"

// Config represents the root configuration structure.
type Config struct {
	// Run controls how automations are replayed.
	Run RunConfig `mapstructure:"run"`

	// Capture controls coordinate capture.
	Capture CaptureConfig `mapstructure:"capture"`

	// Presets locates the preset documents.
	Presets PresetsConfig `mapstructure:"presets"`

	// Preferences locates the preferences document.
	Preferences PreferencesConfig `mapstructure:"preferences"`
}

// RunConfig contains replay settings.
type RunConfig struct {
	// DefaultDelay is the post-step delay in seconds given to steps added
	// without an explicit --delay.
	// Default: 0.5
	DefaultDelay float64 `mapstructure:"default_delay"`

	// TypeIntervalMS is the pause between typed characters in milliseconds.
	// Default: 0
	TypeIntervalMS int `mapstructure:"type_interval_ms"`

	// StopKey is the global key that stops a running automation.
	// Default: "esc"
	StopKey string `mapstructure:"stop_key"`
}

// CaptureConfig contains coordinate capture settings.
type CaptureConfig struct {
	// CountdownSeconds is how long to wait before reading the cursor.
	// Default: 3
	CountdownSeconds int `mapstructure:"countdown_seconds"`
}

// PresetsConfig locates preset documents.
type PresetsConfig struct {
	// Dir is the folder preset files live in.
	// Default: "presets"
	Dir string `mapstructure:"dir"`

	// Default is the working preset's file name inside Dir.
	// Default: "preset.json"
	Default string `mapstructure:"default"`
}

// PreferencesConfig locates the preferences document.
type PreferencesConfig struct {
	// Path is the preferences JSON file.
	// Default: <user config dir>/rowpilot/preferences.json
	Path string `mapstructure:"path"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			DefaultDelay:   0.5,
			TypeIntervalMS: 0,
			StopKey:        "esc",
		},
		Capture: CaptureConfig{
			CountdownSeconds: 3,
		},
		Presets: PresetsConfig{
			Dir:     "presets",
			Default: "preset.json",
		},
		Preferences: PreferencesConfig{
			Path: defaultPreferencesPath(),
		},
	}
}

// PresetPath returns the working preset path.
func (c *Config) PresetPath() string {
	return filepath.Join(c.Presets.Dir, c.Presets.Default)
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "preferences.json"
	}
	return filepath.Join(dir, AppName, "preferences.json")
}
