package injector

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Robot injects input through robotgo.
//
// TypeInterval is the pause between typed characters in milliseconds; zero
// types as fast as robotgo allows.
type Robot struct {
	TypeInterval int
}

// NewRobot creates a [Robot] with the given per-character typing interval.
func NewRobot(typeInterval int) *Robot {
	return &Robot{TypeInterval: typeInterval}
}

// Click moves to (x, y) and left-clicks.
func (r *Robot) Click(x, y int) error {
	return guard("click", func() error {
		robotgo.Move(x, y)
		robotgo.Click("left", false)
		return nil
	})
}

// DoubleClick moves to (x, y) and double-clicks the left button.
func (r *Robot) DoubleClick(x, y int) error {
	return guard("double click", func() error {
		robotgo.Move(x, y)
		robotgo.Click("left", true)
		return nil
	})
}

// RightClick moves to (x, y) and right-clicks.
func (r *Robot) RightClick(x, y int) error {
	return guard("right click", func() error {
		robotgo.Move(x, y)
		robotgo.Click("right", false)
		return nil
	})
}

// MoveTo moves the pointer to (x, y).
func (r *Robot) MoveTo(x, y int) error {
	return guard("move", func() error {
		robotgo.Move(x, y)
		return nil
	})
}

// Write types text.
func (r *Robot) Write(text string) error {
	return guard("write", func() error {
		if r.TypeInterval > 0 {
			robotgo.TypeStr(text, r.TypeInterval)
		} else {
			robotgo.TypeStr(text)
		}
		return nil
	})
}

// Press taps a single key.
func (r *Robot) Press(key string) error {
	return guard("press", func() error {
		return robotgo.KeyTap(NormalizeKey(key))
	})
}

// Hotkey taps the last key while holding the preceding ones, so
// Hotkey("ctrl", "shift", "s") sends ctrl+shift+s.
func (r *Robot) Hotkey(keys ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: hotkey: no keys", ErrInjection)
	}
	return guard("hotkey", func() error {
		main := NormalizeKey(keys[len(keys)-1])
		mods := make([]interface{}, 0, len(keys)-1)
		for _, k := range keys[:len(keys)-1] {
			mods = append(mods, NormalizeKey(k))
		}
		return robotgo.KeyTap(main, mods...)
	})
}

// Position returns the current pointer location.
func (r *Robot) Position() (int, int) {
	return robotgo.Location()
}

// guard runs fn and converts both returned errors and native panics into
// errors wrapping [ErrInjection].
func guard(action string, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrInjection, action, rec)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInjection, action, err)
	}
	return nil
}
