// Package catalog holds the static ingredient catalog: generic ingredients,
// the specific variants each one groups, and the set of preparation actions.
//
// A Catalog is immutable once built. All names are stored NFC-normalized and
// every lookup normalizes its argument the same way, so visually identical
// names always compare equal regardless of how their accents were typed.
//
// Unknown keys never produce an error: option lookups return an empty slice
// and membership tests return false.
package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Group is one generic ingredient and its ordered specific variants.
type Group struct {
	Generic   string
	Specifics []string
}

// Catalog maps generic ingredient names to their specific variants and
// carries the fixed action set.
type Catalog struct {
	generics  []string
	specifics map[string][]string
	actions   []string
}

// New builds a catalog from groups and actions, preserving their order.
//
// Returns an error for empty names, duplicate generics, duplicate specifics
// within a group, duplicate actions, or an empty group/action list.
func New(groups []Group, actions []string) (*Catalog, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("catalog: at least one generic ingredient is required")
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("catalog: at least one action is required")
	}

	c := &Catalog{specifics: make(map[string][]string, len(groups))}

	for i, g := range groups {
		generic := normalize(g.Generic)
		if generic == "" {
			return nil, fmt.Errorf("catalog: generics[%d]: name is required", i)
		}
		if _, dup := c.specifics[generic]; dup {
			return nil, fmt.Errorf("catalog: duplicate generic %q", generic)
		}

		options := make([]string, 0, len(g.Specifics))
		for j, s := range g.Specifics {
			specific := normalize(s)
			if specific == "" {
				return nil, fmt.Errorf("catalog: %s.specifics[%d]: name is required", generic, j)
			}
			if slices.Contains(options, specific) {
				return nil, fmt.Errorf("catalog: duplicate specific %q in %q", specific, generic)
			}
			options = append(options, specific)
		}

		c.generics = append(c.generics, generic)
		c.specifics[generic] = options
	}

	for i, a := range actions {
		action := normalize(a)
		if action == "" {
			return nil, fmt.Errorf("catalog: actions[%d]: name is required", i)
		}
		if slices.Contains(c.actions, action) {
			return nil, fmt.Errorf("catalog: duplicate action %q", action)
		}
		c.actions = append(c.actions, action)
	}

	return c, nil
}

// SpecificOptionsFor returns the specific variants of generic in catalog
// order. Empty when generic is empty or unknown.
func (c *Catalog) SpecificOptionsFor(generic string) []string {
	options, ok := c.specifics[normalize(generic)]
	if !ok {
		return []string{}
	}
	return slices.Clone(options)
}

// IsValidGeneric reports whether name is a catalog key.
func (c *Catalog) IsValidGeneric(name string) bool {
	_, ok := c.specifics[normalize(name)]
	return ok
}

// IsValidSpecific reports whether specific belongs to generic's group.
func (c *Catalog) IsValidSpecific(generic, specific string) bool {
	options, ok := c.specifics[normalize(generic)]
	if !ok {
		return false
	}
	return slices.Contains(options, normalize(specific))
}

// IsValidAction reports whether name is in the action set.
func (c *Catalog) IsValidAction(name string) bool {
	return slices.Contains(c.actions, normalize(name))
}

// Generics returns the generic names in catalog order.
func (c *Catalog) Generics() []string {
	return slices.Clone(c.generics)
}

// Actions returns the action names in catalog order.
func (c *Catalog) Actions() []string {
	return slices.Clone(c.actions)
}

// Groups returns a copy of the catalog contents in order.
func (c *Catalog) Groups() []Group {
	groups := make([]Group, len(c.generics))
	for i, g := range c.generics {
		groups[i] = Group{Generic: g, Specifics: slices.Clone(c.specifics[g])}
	}
	return groups
}

// Normalize returns name in the form the catalog stores it (NFC).
// Callers persisting names should store the normalized form.
func Normalize(name string) string {
	return normalize(name)
}

func normalize(s string) string {
	return norm.NFC.String(s)
}
