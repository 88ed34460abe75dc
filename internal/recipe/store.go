package recipe

import (
	"context"
	"log/slog"
	"slices"

	"github.com/roach88/recetario/internal/catalog"
)

// noEdit marks the absence of an entry being edited.
const noEdit = -1

// Store is the ingredient list state manager.
//
// Store is not safe for concurrent use; it expects one command at a time.
type Store struct {
	cat     Catalog
	persist *Persistence
	log     *slog.Logger

	entries []Entry
	diners  int
	notes   string

	draft   Entry
	editing int
}

// Option configures a Store.
type Option func(*Store)

// WithPersistence makes every successful mutation write through p.
func WithPersistence(p *Persistence) Option {
	return func(s *Store) { s.persist = p }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore creates an empty store: no entries, 1 diner, no notes.
// Call Load to restore persisted state.
func NewStore(cat Catalog, opts ...Option) *Store {
	s := &Store{
		cat:     cat,
		entries: []Entry{},
		diners:  1,
		editing: noEdit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s
}

// Load replaces the state with what is persisted. Each slot falls back to
// its default independently. Stored entries that no longer pass validation
// (for instance after a catalog change) are dropped. The draft and edit
// state are cleared.
func (s *Store) Load(ctx context.Context) {
	s.draft = Entry{}
	s.editing = noEdit
	if s.persist == nil {
		return
	}

	stored := s.persist.LoadEntries(ctx)
	s.entries = make([]Entry, 0, len(stored))
	for i, e := range stored {
		if res := Validate(s.cat, e); !res.OK() {
			s.log.Warn("dropping invalid stored entry", "index", i, "rule", res.Rule())
			continue
		}
		s.entries = append(s.entries, e)
	}

	s.diners = s.persist.LoadDiners(ctx)
	s.notes = s.persist.LoadNotes(ctx)

	s.log.Debug("recipe loaded", "entries", len(s.entries), "diners", s.diners)
}

// Save writes every slot.
func (s *Store) Save(ctx context.Context) {
	s.saveEntries(ctx)
	s.saveDiners(ctx)
	s.saveNotes(ctx)
}

// StartDraft discards the current draft and returns the new, empty one.
// The edit state is left as is.
func (s *Store) StartDraft() Entry {
	s.draft = Entry{}
	return s.draft
}

// Draft returns the in-progress draft.
func (s *Store) Draft() Entry {
	return s.draft
}

// SetDraft replaces the whole draft and returns its validation result.
func (s *Store) SetDraft(d Entry) ValidationResult {
	s.draft = d
	return Validate(s.cat, s.draft)
}

// SetDraftField updates one draft field from its text form and returns the
// validation result of the updated draft.
//
// Setting the generic ingredient always clears the specific one. A weight
// that does not parse as a number becomes 0.
func (s *Store) SetDraftField(f Field, value string) ValidationResult {
	switch f {
	case FieldGeneric:
		s.draft.Generic = value
		s.draft.Specific = ""
	case FieldSpecific:
		s.draft.Specific = value
	case FieldWeight:
		s.draft.Weight = parseWeight(value)
	case FieldAction:
		s.draft.Action = value
	}
	return Validate(s.cat, s.draft)
}

// SetDraftWeight sets the draft weight and returns the validation result.
func (s *Store) SetDraftWeight(w float64) ValidationResult {
	s.draft.Weight = w
	return Validate(s.cat, s.draft)
}

// ValidateDraft validates the current draft without changing anything.
func (s *Store) ValidateDraft() ValidationResult {
	return Validate(s.cat, s.draft)
}

// Commit validates the draft and, if it passes, stores it: in place of the
// entry being edited, or appended to the list. On success the draft is
// reset, the edit state cleared and the entries persisted.
//
// An invalid draft leaves the store untouched.
func (s *Store) Commit(ctx context.Context) ValidationResult {
	res := Validate(s.cat, s.draft)
	if !res.OK() {
		return res
	}

	e := Entry{
		Generic:  catalog.Normalize(s.draft.Generic),
		Specific: catalog.Normalize(s.draft.Specific),
		Weight:   s.draft.Weight,
		Action:   catalog.Normalize(s.draft.Action),
	}
	if s.editing != noEdit {
		s.entries[s.editing] = e
		s.editing = noEdit
	} else {
		s.entries = append(s.entries, e)
	}
	s.draft = Entry{}

	s.saveEntries(ctx)
	return res
}

// BeginEdit loads entry i into the draft and marks it as being edited.
// An out-of-range index is a no-op returning ErrIndexOutOfRange.
func (s *Store) BeginEdit(i int) error {
	if !s.inRange(i) {
		return ErrIndexOutOfRange
	}
	s.draft = s.entries[i]
	s.editing = i
	return nil
}

// CancelEdit clears the draft and the edit state without touching entries.
func (s *Store) CancelEdit() {
	s.draft = Entry{}
	s.editing = noEdit
}

// Editing returns the index of the entry being edited.
func (s *Store) Editing() (int, bool) {
	if s.editing == noEdit {
		return 0, false
	}
	return s.editing, true
}

// Remove deletes entry i, shifting later entries down by one, and persists
// the list. Removing the entry being edited also clears the draft; removing
// an earlier one moves the edit index with its entry.
//
// An out-of-range index is a no-op returning ErrIndexOutOfRange.
func (s *Store) Remove(ctx context.Context, i int) error {
	if !s.inRange(i) {
		return ErrIndexOutOfRange
	}

	s.entries = slices.Delete(s.entries, i, i+1)

	switch {
	case s.editing == i:
		s.draft = Entry{}
		s.editing = noEdit
	case s.editing > i:
		s.editing--
	}

	s.saveEntries(ctx)
	return nil
}

// SetDiners sets the number of diners and persists it.
// Values below 1 return ErrInvalidDiners and keep the previous value.
func (s *Store) SetDiners(ctx context.Context, n int) error {
	if n < 1 {
		return ErrInvalidDiners
	}
	s.diners = n
	s.saveDiners(ctx)
	return nil
}

// SetNotes replaces the notes and persists them.
func (s *Store) SetNotes(ctx context.Context, notes string) {
	s.notes = notes
	s.saveNotes(ctx)
}

// Reset returns the store to its empty state and persists that state.
func (s *Store) Reset(ctx context.Context) {
	s.entries = []Entry{}
	s.diners = 1
	s.notes = ""
	s.draft = Entry{}
	s.editing = noEdit
	s.Save(ctx)
}

// Entries returns a copy of the committed entries in order.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of committed entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Diners returns the current number of diners.
func (s *Store) Diners() int {
	return s.diners
}

// Notes returns the current notes.
func (s *Store) Notes() string {
	return s.notes
}

// CanExport reports whether there is anything to export.
func (s *Store) CanExport() bool {
	return len(s.entries) > 0
}

// Lines returns every entry rendered for the current number of diners.
func (s *Store) Lines() []string {
	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[i] = RenderLine(e, s.diners)
	}
	return lines
}

// Document renders the current state for export.
// Returns ErrNothingToExport when there are no entries.
func (s *Store) Document(labels Labels) (Document, error) {
	return RenderDocument(s.entries, s.diners, s.notes, labels)
}

func (s *Store) inRange(i int) bool {
	return i >= 0 && i < len(s.entries)
}

func (s *Store) saveEntries(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveEntries(ctx, s.entries); err != nil {
		s.log.Warn("persisting entries failed", "error", err)
	}
}

func (s *Store) saveDiners(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveDiners(ctx, s.diners); err != nil {
		s.log.Warn("persisting diners failed", "error", err)
	}
}

func (s *Store) saveNotes(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveNotes(ctx, s.notes); err != nil {
		s.log.Warn("persisting notes failed", "error", err)
	}
}
