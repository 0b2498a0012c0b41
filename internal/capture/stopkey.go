package capture

import (
	"fmt"
	"strings"
	"unicode"

	hook "github.com/robotn/gohook"
)

// DefaultStopKey is the key that stops a running automation.
const DefaultStopKey = "esc"

// WatchKey starts a global keyboard hook and signals the returned channel
// each time key is pressed. Signals are coalesced: a press while the previous
// one is unread is dropped. The stop func ends the hook and waits for the
// watcher goroutine to exit.
func WatchKey(key string) (<-chan struct{}, func(), error) {
	match, err := keyMatcher(key)
	if err != nil {
		return nil, nil, err
	}

	pressed := make(chan struct{}, 1)
	done := make(chan struct{})
	evChan := hook.Start()

	go func() {
		defer close(done)
		for ev := range evChan {
			if ev.Kind != hook.KeyDown || !match(ev) {
				continue
			}
			select {
			case pressed <- struct{}{}:
			default:
			}
		}
	}()

	return pressed, func() {
		hook.End()
		<-done
	}, nil
}

// keyMatcher returns a predicate for key-down events of key. Named keys are
// matched by keycode, single characters by the decoded character.
func keyMatcher(key string) (func(hook.Event) bool, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, fmt.Errorf("empty stop key")
	}
	if key == "escape" {
		key = "esc"
	}

	if code, ok := hook.Keycode[key]; ok && len([]rune(key)) > 1 {
		return func(ev hook.Event) bool {
			return ev.Keycode == code
		}, nil
	}

	rs := []rune(key)
	if len(rs) != 1 {
		return nil, fmt.Errorf("unknown stop key %q", key)
	}
	want := rs[0]
	return func(ev hook.Event) bool {
		if ev.Keychar != 0 && ev.Keychar != hook.CharUndefined {
			return unicode.ToLower(ev.Keychar) == want
		}
		s := []rune(strings.ToLower(hook.RawcodetoKeychar(ev.Rawcode)))
		return len(s) == 1 && s[0] == want
	}, nil
}
