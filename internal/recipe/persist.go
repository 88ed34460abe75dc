package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roach88/recetario/internal/kv"
)

// Storage keys. Each slot is written and read on its own so a corrupt value
// in one never costs the others.
const (
	KeyEntries = "recetario.ingredientes"
	KeyDiners  = "recetario.comensales"
	KeyNotes   = "recetario.notas"
)

// KV is the durable string store the recipe state is kept in.
// Get must return kv.ErrNotFound for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Persistence reads and writes the three recipe slots.
//
// Loads never fail: absent or malformed values fall back to an empty list,
// 1 diner and empty notes.
type Persistence struct {
	kv  KV
	log *slog.Logger
}

// NewPersistence wraps a KV store. A nil logger discards output.
func NewPersistence(store KV, log *slog.Logger) *Persistence {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Persistence{kv: store, log: log}
}

// SaveEntries writes entries as a JSON array.
func (p *Persistence) SaveEntries(ctx context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.kv.Put(ctx, KeyEntries, string(data))
}

// SaveDiners writes n as a decimal string.
func (p *Persistence) SaveDiners(ctx context.Context, n int) error {
	return p.kv.Put(ctx, KeyDiners, strconv.Itoa(n))
}

// SaveNotes writes notes verbatim.
func (p *Persistence) SaveNotes(ctx context.Context, notes string) error {
	return p.kv.Put(ctx, KeyNotes, notes)
}

// LoadEntries returns the stored entries, or an empty list when the slot is
// absent, unreadable or not a JSON array of entries.
func (p *Persistence) LoadEntries(ctx context.Context) []Entry {
	raw, ok := p.get(ctx, KeyEntries)
	if !ok {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		p.log.Warn("discarding malformed stored entries", "key", KeyEntries, "error", err)
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// LoadDiners returns the stored number of diners, or 1 when the slot is
// absent, not an integer, or below 1.
func (p *Persistence) LoadDiners(ctx context.Context) int {
	raw, ok := p.get(ctx, KeyDiners)
	if !ok {
		return 1
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		p.log.Warn("discarding malformed stored diners", "key", KeyDiners, "value", raw)
		return 1
	}
	return n
}

// LoadNotes returns the stored notes, or "" when the slot is absent.
func (p *Persistence) LoadNotes(ctx context.Context) string {
	raw, ok := p.get(ctx, KeyNotes)
	if !ok {
		return ""
	}
	return raw
}

func (p *Persistence) get(ctx context.Context, key string) (string, bool) {
	raw, err := p.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		p.log.Debug("no stored value", "key", key)
		return "", false
	}
	if err != nil {
		p.log.Warn("reading stored value failed", "key", key, "error", err)
		return "", false
	}
	return raw, true
}
