// Package sequencer replays an automation sequence once per table row.
//
// The [Executor] walks rows in a [Range] and, for each row, dispatches every
// step to an [injector.Injector], pausing for each step's delay. A running
// flag is polled before each row and before each step; clearing it with
// [Executor.Stop] is the only way to cancel a run, and it never interrupts a
// step that has already been dispatched.
//
// Key concepts:
//   - A run moves Idle -> Running -> Stopped or Completed
//   - Errors are row-scoped: the [Observer] is told about the failure and
//     decides whether the run continues with the next row
//   - [Executor.TestStep] runs one step against the first row through the
//     same dispatch path as a full run
package sequencer

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"rowpilot/internal/injector"
	"rowpilot/internal/mapping"
	"rowpilot/internal/step"
	"rowpilot/internal/table"
)

// Sentinel errors for starting runs.
var (
	// ErrRunning is returned when a run or test is requested while a run is
	// already in progress.
	ErrRunning = errors.New("automation is already running")

	// ErrNoSteps is returned when the job has no steps.
	ErrNoSteps = errors.New("no automation steps")

	// ErrNoTable is returned when the job has no table loaded.
	ErrNoTable = errors.New("no table loaded")

	// errStopped marks a row abandoned because the running flag was cleared.
	errStopped = errors.New("stopped")
)

// State is the state of the executor's current or last run.
type State int32

const (
	Idle State = iota
	Running
	Stopped
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Job is everything one run needs. The executor copies Steps when the run
// starts; Table and Mappings are only read.
type Job struct {
	Steps    []step.Step
	Mappings *mapping.List
	Table    *table.Table
	Range    Range
}

// Observer receives progress from the worker.
//
// Rows are 0-based table indexes. RowFailed is called with a [*RowError] and
// returns whether the run should continue with the next row.
type Observer interface {
	RowStarted(row, total int)
	StepDone(row, index int, s step.Step)
	RowFinished(row int)
	RowFailed(row int, err error) bool
}

// Result summarizes a finished run.
type Result struct {
	State         State
	RowsProcessed int
	RowsFailed    int
	Duration      time.Duration
}

// Executor runs jobs against an injector.
//
// Use [NewExecutor] to create one. An Executor runs at most one job at a
// time; it can be reused after a run finishes.
type Executor struct {
	injector injector.Injector
	sleep    func(time.Duration)
	running  atomic.Bool
	state    atomic.Int32
}

// NewExecutor creates an Executor that dispatches to inj and sleeps with
// time.Sleep.
func NewExecutor(inj injector.Injector) *Executor {
	return &Executor{
		injector: inj,
		sleep:    time.Sleep,
	}
}

// SetSleeper replaces the function used for Wait steps and post-delays.
func (e *Executor) SetSleeper(sleep func(time.Duration)) {
	e.sleep = sleep
}

// Running reports whether a run is in progress and has not been asked to stop.
func (e *Executor) Running() bool {
	return e.running.Load()
}

// State returns the state of the current or last run.
func (e *Executor) State() State {
	return State(e.state.Load())
}

// Stop clears the running flag. The worker notices at the next row or step
// boundary.
func (e *Executor) Stop() {
	e.running.Store(false)
}

// Start launches job on a single worker goroutine and returns a channel that
// receives the [Result] once the run is over. The running flag is set before
// Start returns, so a Stop issued right after Start is never lost.
func (e *Executor) Start(job Job, obs Observer) (<-chan Result, error) {
	if err := e.begin(job); err != nil {
		return nil, err
	}
	done := make(chan Result, 1)
	go func() {
		done <- e.run(job, obs)
	}()
	return done, nil
}

// Run executes job on the calling goroutine and returns when the run is over.
func (e *Executor) Run(job Job, obs Observer) (Result, error) {
	if err := e.begin(job); err != nil {
		return Result{}, err
	}
	return e.run(job, obs), nil
}

func (e *Executor) begin(job Job) error {
	if len(job.Steps) == 0 {
		return ErrNoSteps
	}
	if job.Table == nil {
		return ErrNoTable
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	e.state.Store(int32(Running))
	return nil
}

func (e *Executor) run(job Job, obs Observer) Result {
	if obs == nil {
		obs = nopObserver{}
	}
	started := time.Now()
	steps := snapshot(job.Steps)
	first, end := job.Range.Resolve(job.Table.RowCount())
	total := end - first

	res := Result{State: Completed}

rows:
	for row := first; row < end; row++ {
		if !e.running.Load() {
			res.State = Stopped
			break
		}

		obs.RowStarted(row, total)
		err := e.runRow(job, steps, row, obs)

		switch {
		case errors.Is(err, errStopped):
			res.State = Stopped
			break rows
		case err != nil:
			res.RowsFailed++
			if !obs.RowFailed(row, &RowError{Row: row, Err: err}) {
				res.State = Stopped
				break rows
			}
		default:
			res.RowsProcessed++
			obs.RowFinished(row)
		}
	}

	res.Duration = time.Since(started)
	e.state.Store(int32(res.State))
	e.running.Store(false)
	return res
}

func (e *Executor) runRow(job Job, steps []step.Step, row int, obs Observer) error {
	for i, s := range steps {
		if !e.running.Load() {
			return errStopped
		}
		if err := e.executeStep(job, s, row); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Action, err)
		}
		obs.StepDone(row, i, s)
		e.pause(s.Delay)
	}
	return nil
}

// TestStep runs steps[index] against row 0 without the row loop or the
// step's post-delay. It shares dispatch with full runs.
func (e *Executor) TestStep(job Job, index int) error {
	if index < 0 || index >= len(job.Steps) {
		return &step.RangeError{Op: "test", Index: index, Len: len(job.Steps)}
	}
	if e.running.Load() {
		return ErrRunning
	}
	s := job.Steps[index]
	if s.IsTableBound() && job.Table == nil {
		return ErrNoTable
	}
	return e.executeStep(job, s, 0)
}

// executeStep resolves s's parameters for row and dispatches it.
func (e *Executor) executeStep(job Job, s step.Step, row int) error {
	switch s.Action {
	case step.KindClick:
		x, y := s.Point()
		return inject(s.Action, e.injector.Click(x, y))

	case step.KindDoubleClick:
		x, y := s.Point()
		return inject(s.Action, e.injector.DoubleClick(x, y))

	case step.KindRightClick:
		x, y := s.Point()
		return inject(s.Action, e.injector.RightClick(x, y))

	case step.KindMoveMouse:
		x, y := s.Point()
		return inject(s.Action, e.injector.MoveTo(x, y))

	case step.KindTypeText:
		text, err := resolveText(job, s, row)
		if err != nil {
			return err
		}
		return inject(s.Action, e.injector.Write(text))

	case step.KindKeyPress:
		keys := step.ParseChord(s.Key())
		if len(keys) == 0 {
			return fmt.Errorf("empty key for %s", s.Action)
		}
		if len(keys) > 1 {
			return inject(s.Action, e.injector.Hotkey(keys...))
		}
		return inject(s.Action, e.injector.Press(keys[0]))

	case step.KindWait:
		e.pause(s.Seconds())
		return nil
	}
	return fmt.Errorf("unsupported action %q", s.Action)
}

// resolveText returns the literal text of a fixed step, or the cell bound to
// the step's variable by the first matching mapping.
func resolveText(job Job, s step.Step, row int) (string, error) {
	if !s.IsTableBound() {
		return s.Text(), nil
	}
	column, ok := job.Mappings.Lookup(s.Text())
	if !ok {
		return "", &UnresolvedVariableError{Variable: s.Text()}
	}
	if job.Table == nil {
		return "", ErrNoTable
	}
	cell, err := job.Table.Cell(row, column)
	if err != nil {
		return "", fmt.Errorf("variable %q: %w", s.Text(), err)
	}
	return cell, nil
}

func (e *Executor) pause(seconds float64) {
	if seconds <= 0 {
		return
	}
	e.sleep(time.Duration(seconds * float64(time.Second)))
}

func snapshot(steps []step.Step) []step.Step {
	out := make([]step.Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}

type nopObserver struct{}

func (nopObserver) RowStarted(int, int) {}
func (nopObserver) StepDone(int, int, step.Step) {}
func (nopObserver) RowFinished(int) {}
func (nopObserver) RowFailed(int, error) bool { return false }
