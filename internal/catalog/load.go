package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed default.cue
var defaultCUE []byte

// DefaultFilename is the name reported in positions for the embedded catalog.
const DefaultFilename = "default.cue"

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultCUE, DefaultFilename)
})

// Default returns the built-in catalog.
// Panics if the embedded definition is broken, which tests guard against.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// LoadError is a catalog definition error with its CUE position, if known.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadFile reads a CUE catalog definition from path.
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(src, path)
}

// Parse compiles a CUE catalog definition.
//
// The definition has two top-level fields:
//
//	generics: [{name: "Pimiento", specifics: ["Pimiento rojo", ...]}, ...]
//	actions:  ["Cortar", ...]
//
// Both lists are ordered; that order is the display order.
func Parse(src []byte, filename string) (*Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	groups, err := parseGenerics(v)
	if err != nil {
		return nil, err
	}

	actions, err := parseStrings(v.LookupPath(cue.ParsePath("actions")), "actions")
	if err != nil {
		return nil, err
	}

	c, err := New(groups, actions)
	if err != nil {
		return nil, &LoadError{Field: "catalog", Message: err.Error(), Pos: v.Pos()}
	}
	return c, nil
}

func parseGenerics(v cue.Value) ([]Group, error) {
	gv := v.LookupPath(cue.ParsePath("generics"))
	if !gv.Exists() {
		return nil, &LoadError{Field: "generics", Message: "generics is required", Pos: v.Pos()}
	}

	iter, err := gv.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var groups []Group
	for iter.Next() {
		item := iter.Value()

		nameVal := item.LookupPath(cue.ParsePath("name"))
		if !nameVal.Exists() {
			return nil, &LoadError{Field: "generics.name", Message: "name is required", Pos: item.Pos()}
		}
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}

		specifics, err := parseStrings(item.LookupPath(cue.ParsePath("specifics")), name+".specifics")
		if err != nil {
			return nil, err
		}

		groups = append(groups, Group{Generic: name, Specifics: specifics})
	}
	return groups, nil
}

func parseStrings(v cue.Value, field string) ([]string, error) {
	if !v.Exists() {
		return nil, &LoadError{Field: field, Message: field + " is required"}
	}
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
