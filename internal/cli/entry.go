package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/recipe"
)

// entryFlags are the draft fields shared by check, add and edit.
type entryFlags struct {
	Generic  string
	Specific string
	Weight   string
	Action   string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Generic, "generic", "g", "", "generic ingredient (e.g. Pimiento)")
	cmd.Flags().StringVarP(&f.Specific, "specific", "s", "", "specific ingredient (e.g. \"Pimiento rojo\")")
	cmd.Flags().StringVarP(&f.Weight, "weight", "w", "", "weight per diner in grams")
	cmd.Flags().StringVarP(&f.Action, "action", "a", "", "preparation action (e.g. Cortar)")
}

// apply sets the draft fields whose flags were given, in form order. A new
// generic clears the specific, so it is applied first.
func (f *entryFlags) apply(cmd *cobra.Command, st *recipe.Store) (recipe.ValidationResult, int) {
	fields := []struct {
		flag  string
		field recipe.Field
		value string
	}{
		{"generic", recipe.FieldGeneric, f.Generic},
		{"specific", recipe.FieldSpecific, f.Specific},
		{"weight", recipe.FieldWeight, f.Weight},
		{"action", recipe.FieldAction, f.Action},
	}

	changed := 0
	for _, fl := range fields {
		if cmd.Flags().Changed(fl.flag) {
			st.SetDraftField(fl.field, fl.value)
			changed++
		}
	}
	return st.ValidateDraft(), changed
}

// entryView is the JSON shape of a committed entry.
type entryView struct {
	Index        int     `json:"index"`
	Generic      string  `json:"generic"`
	Specific     string  `json:"specific"`
	Weight       float64 `json:"weight"`
	Action       string  `json:"action"`
	ScaledWeight float64 `json:"scaled_weight"`
	Line         string  `json:"line"`
}

func newEntryView(i int, e recipe.Entry, diners int) entryView {
	return entryView{
		Index:        i,
		Generic:      e.Generic,
		Specific:     e.Specific,
		Weight:       e.Weight,
		Action:       e.Action,
		ScaledWeight: recipe.ScaledWeight(e, diners),
		Line:         recipe.RenderLine(e, diners),
	}
}

// rejectEntry reports a failed validation.
func rejectEntry(out *OutputFormatter, v recipe.ValidationResult) error {
	return out.Fail(ExitFailure, ErrCodeInvalidEntry, v.Reason(), map[string]string{"rule": string(v.Rule())})
}

// parseIndex reads an entry position argument.
func parseIndex(out *OutputFormatter, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, out.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("invalid index %q: must be an integer", arg), nil)
	}
	return i, nil
}

// storeError maps recipe sentinel errors to CLI failures.
func storeError(out *OutputFormatter, err error, index int) error {
	switch {
	case errors.Is(err, recipe.ErrIndexOutOfRange):
		return out.Fail(ExitFailure, ErrCodeIndexRange, fmt.Sprintf("no entry at index %d", index), nil)
	case errors.Is(err, recipe.ErrInvalidDiners):
		return out.Fail(ExitFailure, ErrCodeInvalidDiners, "diners must be at least 1", nil)
	case errors.Is(err, recipe.ErrNothingToExport):
		return out.Fail(ExitFailure, ErrCodeNothingToShow, "no ingredients in the recipe", nil)
	}
	return out.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}
