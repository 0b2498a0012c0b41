// Package injector performs simulated mouse and keyboard input.
//
// The [Injector] interface is the only way the sequencer touches the desktop.
// [Robot] implements it on top of robotgo; [Mock] records calls for tests.
package injector

import (
	"errors"
	"strings"
)

// ErrInjection is wrapped by every failure reported by an [Injector].
var ErrInjection = errors.New("input injection failed")

// Injector performs simulated input.
type Injector interface {
	Click(x, y int) error
	DoubleClick(x, y int) error
	RightClick(x, y int) error
	MoveTo(x, y int) error
	Write(text string) error
	Press(key string) error
	Hotkey(keys ...string) error
	Position() (x, y int)
}

// keyAliases maps common spellings to the key names robotgo understands.
var keyAliases = map[string]string{
	"escape":     "esc",
	"return":     "enter",
	"win":        "cmd",
	"windows":    "cmd",
	"command":    "cmd",
	"super":      "cmd",
	"meta":       "cmd",
	"option":     "alt",
	"control":    "ctrl",
	"del":        "delete",
	"ins":        "insert",
	"pgup":       "pageup",
	"pgdn":       "pagedown",
	"pagedn":     "pagedown",
	"spacebar":   "space",
	"bksp":       "backspace",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// NormalizeKey lower-cases key and maps common aliases to canonical names.
func NormalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
