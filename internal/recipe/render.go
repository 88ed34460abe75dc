package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaledWeight returns the entry's weight for the given number of diners.
// No rounding is applied.
func ScaledWeight(e Entry, diners int) float64 {
	return e.Weight * float64(diners)
}

// FormatWeight renders grams with the fewest digits that represent w
// exactly: 200, 12.5, 0.30000000000000004.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// RenderLine formats one entry as "<action> <specific> (<scaled>g)".
func RenderLine(e Entry, diners int) string {
	return fmt.Sprintf("%s %s (%sg)", e.Action, e.Specific, FormatWeight(ScaledWeight(e, diners)))
}

// Labels are the fixed texts of an export document.
type Labels struct {
	Title       string `json:"title"`
	NotesHeader string `json:"notes_header"`
	FileName    string `json:"file_name"`
}

// DefaultLabels returns the Spanish labels used by the original tool.
func DefaultLabels() Labels {
	return Labels{
		Title:       "Receta",
		NotesHeader: "Notas:",
		FileName:    "receta",
	}
}

// withDefaults fills empty labels from DefaultLabels.
func (l Labels) withDefaults() Labels {
	d := DefaultLabels()
	if l.Title == "" {
		l.Title = d.Title
	}
	if l.NotesHeader == "" {
		l.NotesHeader = d.NotesHeader
	}
	if l.FileName == "" {
		l.FileName = d.FileName
	}
	return l
}

// Document is a rendered recipe ready for an export sink.
type Document struct {
	// Name is the target name without extension (e.g. "receta").
	Name string `json:"name"`

	Title string `json:"title"`

	// Steps holds one rendered line per entry, in list order.
	Steps []string `json:"steps"`

	// NotesHeader and Notes are empty when the recipe has no notes.
	NotesHeader string `json:"notes_header,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// HasNotes reports whether the document carries a notes block.
func (d Document) HasNotes() bool {
	return d.Notes != ""
}

// Lines returns the document as the ordered text lines a sink consumes:
// title, steps, then the notes header and each line of the notes.
func (d Document) Lines() []string {
	lines := make([]string, 0, 1+len(d.Steps)+2)
	lines = append(lines, d.Title)
	lines = append(lines, d.Steps...)
	if d.HasNotes() {
		lines = append(lines, d.NotesHeader)
		lines = append(lines, strings.Split(d.Notes, "\n")...)
	}
	return lines
}

// RenderDocument builds the export document. The notes block is included
// only when notes contain something other than whitespace; the emitted text
// is trimmed.
//
// Returns ErrNothingToExport when entries is empty.
func RenderDocument(entries []Entry, diners int, notes string, labels Labels) (Document, error) {
	if len(entries) == 0 {
		return Document{}, ErrNothingToExport
	}

	labels = labels.withDefaults()
	doc := Document{
		Name:  labels.FileName,
		Title: labels.Title,
		Steps: make([]string, len(entries)),
	}
	for i, e := range entries {
		doc.Steps[i] = RenderLine(e, diners)
	}

	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		doc.NotesHeader = labels.NotesHeader
		doc.Notes = trimmed
	}

	return doc, nil
}
