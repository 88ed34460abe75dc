package script

import (
	"context"
	"log/slog"

	"github.com/roach88/recetario/internal/recipe"
)

// StepResult reports the outcome of one step.
type StepResult struct {
	Index int    `json:"index"`
	Op    string `json:"op"`
	OK    bool   `json:"ok"`
	// Rule is set when the store's validator rejected the entry.
	Rule   string `json:"rule,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Failed counts the failed steps in results.
func Failed(results []StepResult) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

// Apply runs every step of s against st in order. A failing step is
// reported in its StepResult and the script carries on. Apply always leaves
// the store with no pending draft or edit.
func Apply(ctx context.Context, st *recipe.Store, s *Script, log *slog.Logger) []StepResult {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("script", s.Name)

	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		res := applyStep(ctx, st, step)
		res.Index = i
		res.Op = step.Op()
		results = append(results, res)

		if res.OK {
			log.Debug("step applied", "step", i, "op", res.Op)
		} else {
			log.Warn("step failed", "step", i, "op", res.Op, "reason", res.Reason)
		}
	}
	return results
}

func applyStep(ctx context.Context, st *recipe.Store, step Step) StepResult {
	switch {
	case step.Add != nil:
		st.CancelEdit()
		st.SetDraft(*step.Add)
		return commit(ctx, st)

	case step.Edit != nil:
		e := step.Edit
		if err := st.BeginEdit(e.Index); err != nil {
			return failed(err)
		}
		if e.Generic != nil {
			st.SetDraftField(recipe.FieldGeneric, *e.Generic)
		}
		if e.Specific != nil {
			st.SetDraftField(recipe.FieldSpecific, *e.Specific)
		}
		if e.Weight != nil {
			st.SetDraftWeight(*e.Weight)
		}
		if e.Action != nil {
			st.SetDraftField(recipe.FieldAction, *e.Action)
		}
		return commit(ctx, st)

	case step.Remove != nil:
		if err := st.Remove(ctx, *step.Remove); err != nil {
			return failed(err)
		}

	case step.Diners != nil:
		if err := st.SetDiners(ctx, *step.Diners); err != nil {
			return failed(err)
		}

	case step.Notes != nil:
		st.SetNotes(ctx, *step.Notes)
	}

	return StepResult{OK: true}
}

// commit commits the draft; a rejected draft is discarded so the next step
// starts clean.
func commit(ctx context.Context, st *recipe.Store) StepResult {
	v := st.Commit(ctx)
	if !v.OK() {
		st.CancelEdit()
		return StepResult{Rule: string(v.Rule()), Reason: v.Reason()}
	}
	return StepResult{OK: true}
}

func failed(err error) StepResult {
	return StepResult{Reason: err.Error()}
}
