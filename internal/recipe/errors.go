package recipe

import "errors"

var (
	// ErrIndexOutOfRange is returned when an edit or remove names a position
	// that does not exist. The store is left unchanged.
	ErrIndexOutOfRange = errors.New("recipe: index out of range")

	// ErrInvalidDiners is returned when the number of diners is below 1.
	// The previous value is kept.
	ErrInvalidDiners = errors.New("recipe: diners must be at least 1")

	// ErrNothingToExport is returned when rendering a recipe with no entries.
	ErrNothingToExport = errors.New("recipe: no ingredients to export")
)
