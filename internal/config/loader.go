package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "ROWPILOT"

// Loader loads a [Config] through Viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment overrides wired.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return &Loader{v: v}
}

// setDefaults registers every key so AutomaticEnv applies on Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("run.default_delay", cfg.Run.DefaultDelay)
	v.SetDefault("run.type_interval_ms", cfg.Run.TypeIntervalMS)
	v.SetDefault("run.stop_key", cfg.Run.StopKey)
	v.SetDefault("capture.countdown_seconds", cfg.Capture.CountdownSeconds)
	v.SetDefault("presets.dir", cfg.Presets.Dir)
	v.SetDefault("presets.default", cfg.Presets.Default)
	v.SetDefault("preferences.path", cfg.Preferences.Path)
}

// Load resolves the config file (see the package documentation for the
// search order) and returns the merged configuration. A missing config file
// is not an error.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	l.v.SetConfigName(AppName)
	l.v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		if path := filepath.Join(dir, AppName, "config.yaml"); fileExists(path) {
			return l.LoadFromFile(path)
		}
	}
	l.v.AddConfigPath(".")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.unmarshal()
}

// LoadFromFile reads configuration from path, layered over the defaults and
// under environment overrides.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
