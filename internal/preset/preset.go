// Package preset reads and writes preset documents.
//
// A preset is the only persisted artifact of an authoring session: the
// automation steps plus the column mappings. The on-disk format is a JSON
// object:
//
//	{
//	  "automation_steps": [{"action": "Click", "params": {"x": 10, "y": 20}, "delay": 0.5}],
//	  "column_mappings": [["name", "Name", "Alice"]]
//	}
//
// Loading validates every step before returning anything, so a failed load
// never yields a partial preset.
package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rowpilot/internal/mapping"
	"rowpilot/internal/step"
)

// ErrFile is matched by every [FileError].
var ErrFile = errors.New("preset file error")

// FileError reports a failure to read, parse, or write a preset.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s preset %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFile) true.
func (e *FileError) Is(target error) bool { return target == ErrFile }

// Document is the JSON shape of a preset file.
type Document struct {
	AutomationSteps []step.Step       `json:"automation_steps"`
	ColumnMappings  []mapping.Mapping `json:"column_mappings"`
}

// Preset is a loaded, validated preset.
type Preset struct {
	Sequence *step.Sequence
	Mappings *mapping.List
}

// Empty returns a preset with no steps and no mappings.
func Empty() *Preset {
	return &Preset{Sequence: &step.Sequence{}, Mappings: &mapping.List{}}
}

// Save writes steps and mappings to path as indented JSON. The file is
// written to a temporary sibling first and renamed into place.
func Save(path string, steps []step.Step, mappings []mapping.Mapping) error {
	doc := Document{AutomationSteps: steps, ColumnMappings: mappings}
	if doc.AutomationSteps == nil {
		doc.AutomationSteps = []step.Step{}
	}
	if doc.ColumnMappings == nil {
		doc.ColumnMappings = []mapping.Mapping{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &FileError{Op: "encode", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &FileError{Op: "write", Path: path, Err: err}
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0644); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SavePreset writes p to path.
func SavePreset(path string, p *Preset) error {
	return Save(path, p.Sequence.Steps(), p.Mappings.Items())
}

// Load reads and validates the preset at path.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	p, err := Decode(data)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}
	return p, nil
}

// LoadOrEmpty loads path, returning an empty preset when the file does not
// exist yet.
func LoadOrEmpty(path string) (*Preset, error) {
	p, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Empty(), nil
	}
	return p, err
}

// Decode parses a preset document. Numbers are decoded exactly, so a wait of
// 2.5 seconds reads back as 2.5.
func Decode(data []byte) (*Preset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw struct {
		AutomationSteps []struct {
			Action step.Kind   `json:"action"`
			Params step.Params `json:"params"`
			Delay  json.Number `json:"delay"`
		} `json:"automation_steps"`
		ColumnMappings []mapping.Mapping `json:"column_mappings"`
	}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	steps := make([]step.Step, 0, len(raw.AutomationSteps))
	for i, rs := range raw.AutomationSteps {
		var delay float64
		if rs.Delay != "" {
			d, err := rs.Delay.Float64()
			if err != nil {
				return nil, fmt.Errorf("step %d: delay: %w", i+1, err)
			}
			delay = d
		}
		steps = append(steps, step.Step{Action: rs.Action, Params: rs.Params, Delay: delay})
	}

	seq, err := step.NewSequence(steps)
	if err != nil {
		return nil, err
	}
	return &Preset{Sequence: seq, Mappings: mapping.NewList(raw.ColumnMappings)}, nil
}

// List returns the .json preset files in dir, sorted by name. A missing
// directory yields no presets.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &FileError{Op: "list", Path: dir, Err: err}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, filepath.Join(dir, e.Name()))
	}
	sort.Strings(names)
	return names, nil
}
