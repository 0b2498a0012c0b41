package sequencer

import (
	"fmt"

	"rowpilot/internal/step"
)

// UnresolvedVariableError reports a Type Text step whose variable has no
// column mapping.
type UnresolvedVariableError struct {
	Variable string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("no column mapping for variable %q", e.Variable)
}

// InjectionError reports a failed call into the input injector.
type InjectionError struct {
	Action step.Kind
	Err    error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *InjectionError) Unwrap() error { return e.Err }

// RowError is the error reported to the [Observer] when a row fails. Row is
// the 0-based table index.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row+1, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

func inject(action step.Kind, err error) error {
	if err != nil {
		return &InjectionError{Action: action, Err: err}
	}
	return nil
}
