package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// listView is the JSON shape of the whole recipe state.
type listView struct {
	Diners    int         `json:"diners"`
	Entries   []entryView `json:"entries"`
	Notes     string      `json:"notes,omitempty"`
	CanExport bool        `json:"can_export"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the recipe",
		Long: `Show the ingredient entries with their weights scaled by the number of
diners, followed by the notes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	st := s.store
	view := listView{
		Diners:    st.Diners(),
		Entries:   make([]entryView, 0, st.Len()),
		Notes:     st.Notes(),
		CanExport: st.CanExport(),
	}
	for i, e := range st.Entries() {
		view.Entries = append(view.Entries, newEntryView(i, e, view.Diners))
	}

	if s.out.IsJSON() {
		return s.out.Success(view)
	}

	w := s.out.Writer
	fmt.Fprintln(w, ui.RenderTitle(s.cfg.Labels.Title)+" "+ui.RenderMuted(fmt.Sprintf("(%d diner(s))", view.Diners)))
	if len(view.Entries) == 0 {
		fmt.Fprintln(w, ui.RenderMuted("  no ingredients yet"))
	}
	for _, e := range view.Entries {
		fmt.Fprintln(w, ui.RenderEntry(e.Index, e.Line))
	}
	if view.Notes != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.RenderTitle(s.cfg.Labels.NotesHeader))
		fmt.Fprintln(w, view.Notes)
	}
	return nil
}
