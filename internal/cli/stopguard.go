package cli

import (
	"strings"
	"sync/atomic"
	"time"

	"rowpilot/internal/injector"
)

// injectedKeyGrace is how long after an injected stop key the watcher's
// events are still treated as echoes. Global hooks deliver events
// asynchronously, so the echo can arrive after the injector returns.
var injectedKeyGrace = 250 * time.Millisecond

// stopKeyGuard wraps the run's injector and remembers when it is sending
// the stop key itself, so the run loop can tell those events apart from
// the user pressing it.
type stopKeyGuard struct {
	injector.Injector

	key     string
	sending atomic.Int32
	quiet   atomic.Int64
	now     func() time.Time
}

func newStopKeyGuard(inj injector.Injector, stopKey string) *stopKeyGuard {
	return &stopKeyGuard{Injector: inj, key: injector.NormalizeKey(stopKey), now: time.Now}
}

// Injected reports whether a stop-key event seen now was sent by the run.
func (g *stopKeyGuard) Injected() bool {
	if g.sending.Load() > 0 {
		return true
	}
	return g.now().UnixNano() < g.quiet.Load()
}

func (g *stopKeyGuard) Press(key string) error {
	if !g.isStopKey(key) {
		return g.Injector.Press(key)
	}
	return g.suppress(func() error { return g.Injector.Press(key) })
}

func (g *stopKeyGuard) Hotkey(keys ...string) error {
	for _, k := range keys {
		if g.isStopKey(k) {
			return g.suppress(func() error { return g.Injector.Hotkey(keys...) })
		}
	}
	return g.Injector.Hotkey(keys...)
}

// Write is guarded only for single-character stop keys, which typing can
// produce.
func (g *stopKeyGuard) Write(text string) error {
	if len([]rune(g.key)) != 1 || !strings.Contains(strings.ToLower(text), g.key) {
		return g.Injector.Write(text)
	}
	return g.suppress(func() error { return g.Injector.Write(text) })
}

func (g *stopKeyGuard) isStopKey(key string) bool {
	return g.key != "" && injector.NormalizeKey(key) == g.key
}

func (g *stopKeyGuard) suppress(fn func() error) error {
	g.sending.Add(1)
	defer func() {
		g.quiet.Store(g.now().Add(injectedKeyGrace).UnixNano())
		g.sending.Add(-1)
	}()
	return fn()
}
