package injector

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Mock is an [Injector] that records calls instead of performing them.
//
// Each call is recorded as a short string such as `click(10,20)`,
// `write("Alice")` or `hotkey(ctrl,c)`. When FailOn matches a recorded call,
// that call returns an error (the call is still recorded). OnCall, when set,
// runs after each call is recorded.
type Mock struct {
	FailOn string
	X, Y   int
	OnCall func(call string)

	mu    sync.Mutex
	calls []string
}

// Calls returns the recorded calls in order.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func (m *Mock) record(call string) error {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	onCall := m.OnCall
	fail := m.FailOn != "" && m.FailOn == call
	m.mu.Unlock()

	if onCall != nil {
		onCall(call)
	}
	if fail {
		return fmt.Errorf("%w: mock failure on %s", ErrInjection, call)
	}
	return nil
}

func (m *Mock) Click(x, y int) error {
	return m.record(fmt.Sprintf("click(%d,%d)", x, y))
}

func (m *Mock) DoubleClick(x, y int) error {
	return m.record(fmt.Sprintf("doubleClick(%d,%d)", x, y))
}

func (m *Mock) RightClick(x, y int) error {
	return m.record(fmt.Sprintf("rightClick(%d,%d)", x, y))
}

func (m *Mock) MoveTo(x, y int) error {
	m.mu.Lock()
	m.X, m.Y = x, y
	m.mu.Unlock()
	return m.record(fmt.Sprintf("moveTo(%d,%d)", x, y))
}

func (m *Mock) Write(text string) error {
	return m.record("write(" + strconv.Quote(text) + ")")
}

func (m *Mock) Press(key string) error {
	return m.record("press(" + key + ")")
}

func (m *Mock) Hotkey(keys ...string) error {
	return m.record("hotkey(" + strings.Join(keys, ",") + ")")
}

func (m *Mock) Position() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.X, m.Y
}
