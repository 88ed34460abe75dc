// Package script applies a YAML batch of recipe commands to a recipe store.
//
// A script is a named, ordered list of steps. Each step carries exactly one
// operation (add, edit, remove, diners or notes). Steps run in order and a
// failing step does not stop the script; every step gets a StepResult.
package script

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/recetario/internal/recipe"
)

// Script is a recipe script file.
type Script struct {
	// Name identifies the script in results and logs.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is one script command. Exactly one field is set.
type Step struct {
	Add    *recipe.Entry `yaml:"add,omitempty"`
	Edit   *EditStep     `yaml:"edit,omitempty"`
	Remove *int          `yaml:"remove,omitempty"`
	Diners *int          `yaml:"diners,omitempty"`
	Notes  *string       `yaml:"notes,omitempty"`
}

// EditStep changes the given fields of the entry at Index. Fields left out
// keep their current value, except that a new generic always clears the
// specific ingredient.
type EditStep struct {
	Index    int      `yaml:"index"`
	Generic  *string  `yaml:"generic,omitempty"`
	Specific *string  `yaml:"specific,omitempty"`
	Weight   *float64 `yaml:"weight,omitempty"`
	Action   *string  `yaml:"action,omitempty"`
}

// Operation names, as used in YAML and in StepResult.Op.
const (
	OpAdd    = "add"
	OpEdit   = "edit"
	OpRemove = "remove"
	OpDiners = "diners"
	OpNotes  = "notes"
)

// Op returns the name of the step's operation, or "" if none is set.
func (s Step) Op() string {
	switch {
	case s.Add != nil:
		return OpAdd
	case s.Edit != nil:
		return OpEdit
	case s.Remove != nil:
		return OpRemove
	case s.Diners != nil:
		return OpDiners
	case s.Notes != nil:
		return OpNotes
	}
	return ""
}

func (s Step) opCount() int {
	n := 0
	for _, set := range []bool{s.Add != nil, s.Edit != nil, s.Remove != nil, s.Diners != nil, s.Notes != nil} {
		if set {
			n++
		}
	}
	return n
}

// LoadFile reads and parses a script file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a script from YAML and validates it.
func Parse(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScript(&s); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	return &s, nil
}

// validateScript checks structure only. Whether an entry is acceptable is
// decided by the store when the step runs.
func validateScript(s *Script) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.opCount() {
		case 0:
			return fmt.Errorf("steps[%d]: one of add, edit, remove, diners, notes is required", i)
		case 1:
		default:
			return fmt.Errorf("steps[%d]: only one operation per step is allowed", i)
		}

		if e := step.Edit; e != nil {
			if e.Generic == nil && e.Specific == nil && e.Weight == nil && e.Action == nil {
				return fmt.Errorf("steps[%d].edit: at least one field to change is required", i)
			}
		}
	}

	return nil
}
