package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one ingredient line of a recipe. A committed entry always passes
// Validate; a draft may be partially filled.
//
// The JSON names match the stored format of earlier versions of the tool.
type Entry struct {
	Generic  string  `json:"generico" yaml:"generic"`
	Specific string  `json:"especifico" yaml:"specific"`
	Weight   float64 `json:"peso" yaml:"weight"`
	Action   string  `json:"accion" yaml:"action"`
}

// IsZero reports whether every field is empty.
func (e Entry) IsZero() bool {
	return e == Entry{}
}

// Field names a draft field for SetDraftField.
type Field int

const (
	FieldGeneric Field = iota
	FieldSpecific
	FieldWeight
	FieldAction
)

var fieldNames = map[Field]string{
	FieldGeneric:  "generic",
	FieldSpecific: "specific",
	FieldWeight:   "weight",
	FieldAction:   "action",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a field name ("generic", "specific", "weight", "action")
// to its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// parseWeight reads a weight typed as text. Anything unparsable counts as 0,
// which the validator then rejects.
func parseWeight(s string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return w
}
