package capture

import (
	"context"
	"testing"
	"time"

	hook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowpilot/internal/injector"
)

func fastTicks(t *testing.T) {
	t.Helper()
	old := tickInterval
	tickInterval = time.Millisecond
	t.Cleanup(func() { tickInterval = old })
}

func TestCountdown(t *testing.T) {
	fastTicks(t)
	mock := &injector.Mock{X: 120, Y: 340}

	var remaining []int
	p, err := Countdown(context.Background(), mock, 3, func(x, y, r int) {
		assert.Equal(t, 120, x)
		assert.Equal(t, 340, y)
		remaining = append(remaining, r)
	})

	require.NoError(t, err)
	assert.Equal(t, Point{X: 120, Y: 340}, p)
	assert.Equal(t, []int{3, 2, 1}, remaining)
	assert.Equal(t, "120,340", p.String())
}

func TestCountdown_ZeroSeconds(t *testing.T) {
	mock := &injector.Mock{X: 1, Y: 2}

	p, err := Countdown(context.Background(), mock, 0, nil)

	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 2}, p)
}

func TestCountdown_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Countdown(ctx, &injector.Mock{}, 3, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeyMatcher(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		event hook.Event
		want  bool
	}{
		{name: "esc by keycode", key: "esc", event: hook.Event{Keycode: hook.Keycode["esc"]}, want: true},
		{name: "escape alias", key: "Escape", event: hook.Event{Keycode: hook.Keycode["esc"]}, want: true},
		{name: "other keycode", key: "esc", event: hook.Event{Keycode: hook.Keycode["f1"]}, want: false},
		{name: "char", key: "q", event: hook.Event{Keychar: 'q'}, want: true},
		{name: "char upper", key: "q", event: hook.Event{Keychar: 'Q'}, want: true},
		{name: "char mismatch", key: "q", event: hook.Event{Keychar: 'w'}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := keyMatcher(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, match(tt.event))
		})
	}
}

func TestKeyMatcher_Invalid(t *testing.T) {
	_, err := keyMatcher("  ")
	assert.Error(t, err)

	_, err = keyMatcher("not-a-key")
	assert.Error(t, err)
}
