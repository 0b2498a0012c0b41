// Package step provides the authored action model for rowpilot.
//
// A [Step] is one simulated input action (click, type, key press, wait, move)
// with its parameters and a post-delay. Steps are kept in a [Sequence], whose
// order is the execution order used by the sequencer.
//
// Key types:
//   - [Kind] is the canonical action name persisted in presets
//   - [Step] is a single authored action
//   - [Sequence] is the ordered, validated list of steps
//
// Parameters are stored as [Params], keyed exactly as in the preset document,
// so a step can be written to disk and read back without translation.
// [Validate] normalizes parameter values so that a step built in Go and the
// same step decoded from JSON compare equal.
package step

import (
	"fmt"
	"strings"
)

// Kind is the canonical English action name used in preset documents.
type Kind string

// Action kinds.
const (
	KindClick       Kind = "Click"
	KindDoubleClick Kind = "Double Click"
	KindRightClick  Kind = "Right Click"
	KindTypeText    Kind = "Type Text"
	KindKeyPress    Kind = "Key Press"
	KindWait        Kind = "Wait"
	KindMoveMouse   Kind = "Move Mouse"
)

// Kinds lists every action kind in menu order.
var Kinds = []Kind{
	KindClick,
	KindDoubleClick,
	KindRightClick,
	KindTypeText,
	KindKeyPress,
	KindWait,
	KindMoveMouse,
}

// Text sources for Type Text steps, as persisted in the "text_source" param.
const (
	SourceFixed  = "Fixed Text"
	SourceColumn = "Excel Data"
)

// Parameter keys.
const (
	ParamX          = "x"
	ParamY          = "y"
	ParamTextSource = "text_source"
	ParamText       = "text"
	ParamKey        = "key"
	ParamSeconds    = "seconds"
)

var kindAliases = map[string]Kind{
	"click":        KindClick,
	"double-click": KindDoubleClick,
	"doubleclick":  KindDoubleClick,
	"dblclick":     KindDoubleClick,
	"right-click":  KindRightClick,
	"rightclick":   KindRightClick,
	"type":         KindTypeText,
	"type-text":    KindTypeText,
	"key":          KindKeyPress,
	"key-press":    KindKeyPress,
	"press":        KindKeyPress,
	"wait":         KindWait,
	"move":         KindMoveMouse,
	"move-mouse":   KindMoveMouse,
}

// ParseKind resolves a canonical action name (case-insensitive) or one of the
// short CLI aliases such as "click", "type" or "move".
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	for _, k := range Kinds {
		if strings.EqualFold(name, string(k)) {
			return k, nil
		}
	}
	if k, ok := kindAliases[strings.ToLower(name)]; ok {
		return k, nil
	}
	return "", &ValidationError{Field: "action", Reason: fmt.Sprintf("unknown action %q", s)}
}

// IsValid reports whether k is one of the known action kinds.
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsPointer reports whether the kind targets a screen coordinate.
func (k Kind) IsPointer() bool {
	switch k {
	case KindClick, KindDoubleClick, KindRightClick, KindMoveMouse:
		return true
	}
	return false
}

// Params holds a step's parameters keyed as in the preset document.
type Params map[string]any

// Step is one authored action.
//
// Delay is the pause in seconds applied after the step regardless of kind.
type Step struct {
	Action Kind    `json:"action"`
	Params Params  `json:"params"`
	Delay  float64 `json:"delay"`
}

// Click returns a left-click step at (x, y).
func Click(x, y int, delay float64) Step {
	return pointer(KindClick, x, y, delay)
}

// DoubleClick returns a double-click step at (x, y).
func DoubleClick(x, y int, delay float64) Step {
	return pointer(KindDoubleClick, x, y, delay)
}

// RightClick returns a right-click step at (x, y).
func RightClick(x, y int, delay float64) Step {
	return pointer(KindRightClick, x, y, delay)
}

// MoveMouse returns a pointer move step to (x, y).
func MoveMouse(x, y int, delay float64) Step {
	return pointer(KindMoveMouse, x, y, delay)
}

func pointer(k Kind, x, y int, delay float64) Step {
	return Step{Action: k, Params: Params{ParamX: x, ParamY: y}, Delay: delay}
}

// TypeFixed returns a step that types literal text.
func TypeFixed(text string, delay float64) Step {
	return Step{
		Action: KindTypeText,
		Params: Params{ParamTextSource: SourceFixed, ParamText: text},
		Delay:  delay,
	}
}

// TypeColumn returns a step that types the table cell bound to variable.
func TypeColumn(variable string, delay float64) Step {
	return Step{
		Action: KindTypeText,
		Params: Params{ParamTextSource: SourceColumn, ParamText: variable},
		Delay:  delay,
	}
}

// KeyPress returns a key press step. key may be a "+"-joined chord.
func KeyPress(key string, delay float64) Step {
	return Step{Action: KindKeyPress, Params: Params{ParamKey: key}, Delay: delay}
}

// Wait returns a step that pauses for seconds.
func Wait(seconds, delay float64) Step {
	return Step{Action: KindWait, Params: Params{ParamSeconds: seconds}, Delay: delay}
}

// Point returns the x/y coordinates of a validated pointer step.
func (s Step) Point() (int, int) {
	x, _ := s.Params[ParamX].(int)
	y, _ := s.Params[ParamY].(int)
	return x, y
}

// TextSource returns the text source of a validated Type Text step.
func (s Step) TextSource() string {
	src, _ := s.Params[ParamTextSource].(string)
	return src
}

// Text returns the literal text or, for column-bound steps, the variable name.
func (s Step) Text() string {
	text, _ := s.Params[ParamText].(string)
	return text
}

// IsTableBound reports whether the step reads its text from the table.
func (s Step) IsTableBound() bool {
	return s.Action == KindTypeText && s.TextSource() == SourceColumn
}

// Key returns the key spec of a validated Key Press step.
func (s Step) Key() string {
	key, _ := s.Params[ParamKey].(string)
	return key
}

// Seconds returns the duration of a validated Wait step.
func (s Step) Seconds() float64 {
	secs, _ := s.Params[ParamSeconds].(float64)
	return secs
}

// Clone returns a copy of s that shares no map with the original.
func (s Step) Clone() Step {
	params := make(Params, len(s.Params))
	for k, v := range s.Params {
		params[k] = v
	}
	s.Params = params
	return s
}

// ParseChord splits a "+"-joined key spec into trimmed, lower-cased parts.
// A spec without "+" yields a single part.
func ParseChord(spec string) []string {
	raw := strings.Split(spec, "+")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Describe renders the short parameter summary shown in step listings.
func Describe(s Step) string {
	switch {
	case s.Action.IsPointer():
		x, y := s.Point()
		return fmt.Sprintf("x=%d, y=%d", x, y)
	case s.Action == KindTypeText:
		if s.IsTableBound() {
			return "Excel:" + s.Text()
		}
		return "text=" + s.Text()
	case s.Action == KindKeyPress:
		return "key=" + s.Key()
	case s.Action == KindWait:
		return fmt.Sprintf("seconds=%g", s.Seconds())
	}
	return ""
}
