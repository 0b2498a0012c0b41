package step

// Direction is the reorder direction for [Sequence.Move].
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Row is a display row: a step with its 1-based position.
type Row struct {
	Position int
	Step     Step
}

// Sequence is the ordered list of authored steps.
//
// Every step in a Sequence has passed [Validate]. Mutations that fail leave
// the sequence unchanged. The zero value is an empty sequence.
type Sequence struct {
	steps []Step
}

// NewSequence builds a sequence from steps, validating each one.
func NewSequence(steps []Step) (*Sequence, error) {
	seq := &Sequence{}
	if err := seq.Replace(steps); err != nil {
		return nil, err
	}
	return seq, nil
}

// Add validates s and appends it. It returns the new 1-based position.
func (q *Sequence) Add(s Step) (int, error) {
	valid, err := Validate(s)
	if err != nil {
		return 0, err
	}
	q.steps = append(q.steps, valid)
	return len(q.steps), nil
}

// Move swaps the step at index (0-based) with its neighbour in direction d.
func (q *Sequence) Move(index int, d Direction) error {
	target := index - 1
	if d == Down {
		target = index + 1
	}
	if index < 0 || index >= len(q.steps) || target < 0 || target >= len(q.steps) {
		return &RangeError{Op: "move " + d.String(), Index: index, Len: len(q.steps)}
	}
	q.steps[index], q.steps[target] = q.steps[target], q.steps[index]
	return nil
}

// Remove deletes the step at index (0-based); later steps shift down by one.
func (q *Sequence) Remove(index int) error {
	if index < 0 || index >= len(q.steps) {
		return &RangeError{Op: "remove", Index: index, Len: len(q.steps)}
	}
	q.steps = append(q.steps[:index], q.steps[index+1:]...)
	return nil
}

// Replace swaps in a new list of steps. All steps are validated first; on
// error the sequence is left untouched.
func (q *Sequence) Replace(steps []Step) error {
	valid := make([]Step, 0, len(steps))
	for _, s := range steps {
		v, err := Validate(s)
		if err != nil {
			return err
		}
		valid = append(valid, v)
	}
	q.steps = valid
	return nil
}

// Len returns the number of steps.
func (q *Sequence) Len() int {
	return len(q.steps)
}

// At returns the step at index (0-based).
func (q *Sequence) At(index int) (Step, error) {
	if index < 0 || index >= len(q.steps) {
		return Step{}, &RangeError{Op: "read", Index: index, Len: len(q.steps)}
	}
	return q.steps[index].Clone(), nil
}

// Steps returns a deep copy of the steps, suitable as a run snapshot.
func (q *Sequence) Steps() []Step {
	out := make([]Step, len(q.steps))
	for i, s := range q.steps {
		out[i] = s.Clone()
	}
	return out
}

// Rows returns the steps numbered contiguously from 1 for display.
func (q *Sequence) Rows() []Row {
	rows := make([]Row, len(q.steps))
	for i, s := range q.steps {
		rows[i] = Row{Position: i + 1, Step: s.Clone()}
	}
	return rows
}
