package step

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors for step authoring.
var (
	// ErrValidation is matched by every [ValidationError].
	ErrValidation = errors.New("invalid step")

	// ErrRange is matched by every [RangeError].
	ErrRange = errors.New("step index out of range")
)

// ValidationError reports a malformed step parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid step: %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RangeError reports a reorder or remove at an invalid index.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cannot %s step at index %d (sequence has %d steps)", e.Op, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrRange) true.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// requiredParams lists the exact parameter keys for each kind.
var requiredParams = map[Kind][]string{
	KindClick:       {ParamX, ParamY},
	KindDoubleClick: {ParamX, ParamY},
	KindRightClick:  {ParamX, ParamY},
	KindMoveMouse:   {ParamX, ParamY},
	KindTypeText:    {ParamTextSource, ParamText},
	KindKeyPress:    {ParamKey},
	KindWait:        {ParamSeconds},
}

// Validate checks s against the parameter rules of its kind and returns a
// normalized copy: coordinates become int, seconds become float64.
//
// The parameter set must match the kind exactly; missing keys are never
// filled with defaults.
func Validate(s Step) (Step, error) {
	if !s.Action.IsValid() {
		return Step{}, &ValidationError{Field: "action", Reason: fmt.Sprintf("unknown action %q", s.Action)}
	}
	if err := checkDuration("delay", s.Delay); err != nil {
		return Step{}, err
	}

	required := requiredParams[s.Action]
	for _, key := range required {
		if _, ok := s.Params[key]; !ok {
			return Step{}, &ValidationError{Field: key, Reason: fmt.Sprintf("required for %s", s.Action)}
		}
	}
	if len(s.Params) != len(required) {
		return Step{}, &ValidationError{
			Field:  strings.Join(extraKeys(s.Params, required), ","),
			Reason: fmt.Sprintf("not a parameter of %s", s.Action),
		}
	}

	out := Step{Action: s.Action, Params: make(Params, len(required)), Delay: s.Delay}

	switch {
	case s.Action.IsPointer():
		for _, key := range []string{ParamX, ParamY} {
			v, err := toInt(s.Params[key])
			if err != nil {
				return Step{}, &ValidationError{Field: key, Reason: err.Error()}
			}
			out.Params[key] = v
		}

	case s.Action == KindTypeText:
		src, ok := s.Params[ParamTextSource].(string)
		if !ok || (src != SourceFixed && src != SourceColumn) {
			return Step{}, &ValidationError{
				Field:  ParamTextSource,
				Reason: fmt.Sprintf("must be %q or %q", SourceFixed, SourceColumn),
			}
		}
		text, ok := s.Params[ParamText].(string)
		if !ok {
			return Step{}, &ValidationError{Field: ParamText, Reason: "must be a string"}
		}
		if src == SourceColumn && strings.TrimSpace(text) == "" {
			return Step{}, &ValidationError{Field: ParamText, Reason: "variable name is empty"}
		}
		out.Params[ParamTextSource] = src
		out.Params[ParamText] = text

	case s.Action == KindKeyPress:
		key, ok := s.Params[ParamKey].(string)
		if !ok || len(ParseChord(key)) == 0 {
			return Step{}, &ValidationError{Field: ParamKey, Reason: "must be a non-empty key spec"}
		}
		out.Params[ParamKey] = key

	case s.Action == KindWait:
		secs, err := toFloat(s.Params[ParamSeconds])
		if err != nil {
			return Step{}, &ValidationError{Field: ParamSeconds, Reason: err.Error()}
		}
		if err := checkDuration(ParamSeconds, secs); err != nil {
			return Step{}, err
		}
		out.Params[ParamSeconds] = secs
	}

	return out, nil
}

func checkDuration(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func extraKeys(params Params, required []string) []string {
	want := make(map[string]bool, len(required))
	for _, k := range required {
		want[k] = true
	}
	var extra []string
	for k := range params {
		if !want[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("must be an integer, got %v", n)
		}
		return int(n), nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer, got %s", n)
		}
		return toInt(f)
	}
	return 0, fmt.Errorf("must be an integer, got %T", v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be a number, got %s", n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("must be a number, got %T", v)
}
