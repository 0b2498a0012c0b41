package injector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"Enter":   "enter",
		"return":  "enter",
		"ESCAPE":  "esc",
		" win ":   "cmd",
		"Control": "ctrl",
		"pgdn":    "pagedown",
		"f5":      "f5",
		"a":       "a",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestGuard(t *testing.T) {
	err := guard("click", func() error { panic("display unavailable") })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInjection)
	assert.Contains(t, err.Error(), "display unavailable")

	err = guard("press", func() error { return errors.New("unknown key") })
	assert.ErrorIs(t, err, ErrInjection)

	assert.NoError(t, guard("move", func() error { return nil }))
}

func TestRobot_HotkeyWithoutKeys(t *testing.T) {
	err := NewRobot(0).Hotkey()
	assert.ErrorIs(t, err, ErrInjection)
}

func TestMock(t *testing.T) {
	m := &Mock{FailOn: `write("boom")`}

	require.NoError(t, m.Click(1, 2))
	require.NoError(t, m.MoveTo(5, 6))
	require.NoError(t, m.Hotkey("ctrl", "c"))
	err := m.Write("boom")

	assert.ErrorIs(t, err, ErrInjection)
	assert.Equal(t, []string{"click(1,2)", "moveTo(5,6)", "hotkey(ctrl,c)", `write("boom")`}, m.Calls())
	x, y := m.Position()
	assert.Equal(t, 5, x)
	assert.Equal(t, 6, y)

	m.Reset()
	assert.Empty(t, m.Calls())
}
