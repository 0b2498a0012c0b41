// Package mapping binds user-chosen variable names to table columns.
//
// Type Text steps whose text source is a table column refer to a variable
// name; the sequencer resolves that name through a [List] to find the column
// to read for each row.
package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rowpilot/internal/table"
)

// NoSample is recorded as the sample value when the table has no rows.
const NoSample = "N/A"

// Sentinel errors for mapping edits.
var (
	ErrEmptyVariable = errors.New("variable name is empty")
	ErrUnknownColumn = errors.New("column not found in table")
	ErrIndex         = errors.New("mapping index out of range")
)

// Mapping binds Variable to Column. Sample is the first row's value at the
// time the mapping was made and is kept for display only.
type Mapping struct {
	Variable string
	Column   string
	Sample   string
}

// MarshalJSON encodes the mapping as [variable, column, sample].
func (m Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{m.Variable, m.Column, m.Sample})
}

// UnmarshalJSON decodes [variable, column] or [variable, column, sample].
// Numeric variables and columns are read as their decimal text; a non-string
// sample is kept as its JSON text.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("column mapping must be an array: %w", err)
	}
	if len(raw) < 2 || len(raw) > 3 {
		return fmt.Errorf("column mapping must have 2 or 3 elements, got %d", len(raw))
	}

	var out Mapping
	var err error
	if out.Variable, err = textElement(raw[0]); err != nil {
		return fmt.Errorf("column mapping variable: %w", err)
	}
	if out.Column, err = textElement(raw[1]); err != nil {
		return fmt.Errorf("column mapping column: %w", err)
	}
	if len(raw) == 3 {
		if err := json.Unmarshal(raw[2], &out.Sample); err != nil {
			out.Sample = strings.TrimSpace(string(raw[2]))
		}
	}
	*m = out
	return nil
}

// textElement decodes a string or a number as text.
func textElement(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("must be a string or number, got %s", strings.TrimSpace(string(raw)))
	}
	return n.String(), nil
}

// List is an ordered set of mappings. Lookup is first-match-wins.
type List struct {
	items []Mapping
}

// NewList returns a list holding a copy of items.
func NewList(items []Mapping) *List {
	return &List{items: append([]Mapping(nil), items...)}
}

// Add binds variable to column, which must exist in tbl. Duplicate variable
// names are accepted; only the first is ever used by [List.Lookup].
func (l *List) Add(variable, column string, tbl *table.Table) (Mapping, error) {
	variable = strings.TrimSpace(variable)
	if variable == "" {
		return Mapping{}, ErrEmptyVariable
	}
	if tbl == nil || !tbl.HasColumn(column) {
		return Mapping{}, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	sample := NoSample
	if tbl.RowCount() > 0 {
		sample, _ = tbl.Cell(0, column)
	}

	m := Mapping{Variable: variable, Column: column, Sample: sample}
	l.items = append(l.items, m)
	return m, nil
}

// Remove deletes the mapping at index (0-based).
func (l *List) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndex, index, len(l.items))
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Lookup returns the column bound to variable by the first matching mapping.
func (l *List) Lookup(variable string) (string, bool) {
	if l == nil {
		return "", false
	}
	for _, m := range l.items {
		if m.Variable == variable {
			return m.Column, true
		}
	}
	return "", false
}

// Has reports whether variable is bound.
func (l *List) Has(variable string) bool {
	_, ok := l.Lookup(variable)
	return ok
}

// Len returns the number of mappings.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns a copy of the mappings in order.
func (l *List) Items() []Mapping {
	if l == nil {
		return nil
	}
	return append([]Mapping(nil), l.items...)
}

// Variables returns the distinct variable names in first-seen order.
func (l *List) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range l.Items() {
		if !seen[m.Variable] {
			seen[m.Variable] = true
			names = append(names, m.Variable)
		}
	}
	return names
}

// Duplicates returns the variable names bound more than once.
func (l *List) Duplicates() []string {
	count := make(map[string]int)
	var dups []string
	for _, m := range l.Items() {
		count[m.Variable]++
		if count[m.Variable] == 2 {
			dups = append(dups, m.Variable)
		}
	}
	return dups
}
