package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultLanguage is used when no valid language is stored.
const DefaultLanguage = "en"

// Languages lists the supported language codes in menu order.
var Languages = []string{"en", "it", "ru", "fr", "es", "de", "zh"}

// Themes lists the supported themes.
var Themes = []string{ThemeLight, ThemeDark}

// Preferences is the persisted user preference document.
type Preferences struct {
	Language string `mapstructure:"language" json:"language"`
	Theme    string `mapstructure:"theme" json:"theme"`
}

// DefaultPreferences returns English with the light theme.
func DefaultPreferences() Preferences {
	return Preferences{Language: DefaultLanguage, Theme: ThemeLight}
}

// ValidLanguage reports whether code is a supported language.
func ValidLanguage(code string) bool {
	return slices.Contains(Languages, code)
}

// ValidTheme reports whether name is a supported theme.
func ValidTheme(name string) bool {
	return slices.Contains(Themes, name)
}

// LoadPreferences reads the preferences at path. Loading never fails: a
// missing or corrupt file yields [DefaultPreferences], and an unsupported
// language or theme falls back to its default individually.
func LoadPreferences(path string) Preferences {
	prefs := DefaultPreferences()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return prefs
	}

	var stored Preferences
	if err := v.Unmarshal(&stored); err != nil {
		return prefs
	}
	if ValidLanguage(stored.Language) {
		prefs.Language = stored.Language
	}
	if ValidTheme(stored.Theme) {
		prefs.Theme = stored.Theme
	}
	return prefs
}

// SavePreferences writes p to path, creating the directory. Errors are
// swallowed; preferences are a convenience, not session state.
func SavePreferences(path string, p Preferences) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("language", p.Language)
	v.Set("theme", p.Theme)
	_ = v.WriteConfigAs(path)
}
