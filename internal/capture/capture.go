// Package capture reads screen coordinates for pointer steps and watches the
// global stop key during a run.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"
)

// Point is a screen coordinate.
type Point struct {
	X, Y int
}

// String formats p as "x,y", the form copied to the clipboard.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Pointer reports the current cursor position.
type Pointer interface {
	Position() (int, int)
}

// tickInterval is the countdown resolution.
var tickInterval = time.Second

// Countdown waits seconds ticks, calling tick with the live cursor position
// and the seconds remaining, then returns the final cursor position.
// tick may be nil.
func Countdown(ctx context.Context, p Pointer, seconds int, tick func(x, y, remaining int)) (Point, error) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; remaining-- {
		if tick != nil {
			x, y := p.Position()
			tick(x, y, remaining)
		}
		select {
		case <-ctx.Done():
			return Point{}, ctx.Err()
		case <-ticker.C:
		}
	}

	x, y := p.Position()
	return Point{X: x, Y: y}, nil
}

// WaitClick blocks until the next mouse press anywhere on screen and returns
// the cursor position at that moment.
func WaitClick(ctx context.Context) (Point, error) {
	evChan := hook.Start()
	defer hook.End()

	for {
		select {
		case <-ctx.Done():
			return Point{}, ctx.Err()
		case ev, ok := <-evChan:
			if !ok {
				return Point{}, fmt.Errorf("input hook closed")
			}
			if ev.Kind == hook.MouseDown {
				x, y := robotgo.Location()
				return Point{X: x, Y: y}, nil
			}
		}
	}
}
