package sequencer

import "rowpilot/internal/step"

// UpdateKind identifies the observer callback an [Update] carries.
type UpdateKind int

const (
	UpdateRowStarted UpdateKind = iota
	UpdateStepDone
	UpdateRowFinished
	UpdateRowFailed
)

// Update is one observer callback posted by the worker to the interactive
// surface.
type Update struct {
	Kind  UpdateKind
	Row   int
	Total int
	Index int
	Step  step.Step
	Err   error

	reply chan bool
}

// Answer replies to an [UpdateRowFailed] update: true continues with the next
// row, false aborts the run. It is a no-op for other kinds.
func (u Update) Answer(continueRun bool) {
	if u.reply != nil {
		u.reply <- continueRun
	}
}

// Bridge is an [Observer] that hands every callback to the goroutine reading
// [Bridge.Updates], so the worker never touches presentation state itself.
//
// The channel is unbuffered: each callback blocks until the surface has
// received it, and RowFailed blocks until the surface calls [Update.Answer].
// By the time the run's [Result] is delivered every update has been consumed.
type Bridge struct {
	updates chan Update
}

// NewBridge creates a Bridge.
func NewBridge() *Bridge {
	return &Bridge{updates: make(chan Update)}
}

// Updates returns the channel the surface reads.
func (b *Bridge) Updates() <-chan Update {
	return b.updates
}

func (b *Bridge) RowStarted(row, total int) {
	b.updates <- Update{Kind: UpdateRowStarted, Row: row, Total: total}
}

func (b *Bridge) StepDone(row, index int, s step.Step) {
	b.updates <- Update{Kind: UpdateStepDone, Row: row, Index: index, Step: s}
}

func (b *Bridge) RowFinished(row int) {
	b.updates <- Update{Kind: UpdateRowFinished, Row: row}
}

func (b *Bridge) RowFailed(row int, err error) bool {
	reply := make(chan bool, 1)
	b.updates <- Update{Kind: UpdateRowFailed, Row: row, Err: err, reply: reply}
	return <-reply
}
