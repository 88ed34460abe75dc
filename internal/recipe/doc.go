// Package recipe implements the recipe core: ingredient entries, the draft
// validator, the ingredient list store, its persistence and the rendering of
// the export document.
//
// # Store
//
// Store owns the whole recipe state: the ordered list of committed entries,
// the diners multiplier, free-text notes, the in-progress draft and the index
// of the entry being edited, if any. Every mutation either applies completely
// or leaves the state untouched. Successful mutations are persisted
// immediately through the optional Persistence; persistence failures are
// logged and never surfaced to the caller.
//
// Entries have no identity beyond their position. Removing entry i shifts
// every later entry down by one, so callers holding an index must re-derive
// it after any removal.
//
// # Validation
//
// Validate checks a draft against four rules in a fixed order and reports
// only the first one that fails:
//
//  1. generic ingredient is a catalog key
//  2. specific ingredient belongs to that generic's group
//  3. weight is finite and greater than zero
//  4. action is in the action set
//
// # Rendering
//
// RenderLine produces "<action> <specific> (<weight>g)" with the weight
// already multiplied by the number of diners. RenderDocument assembles the
// title, one line per entry and an optional notes block.
package recipe
