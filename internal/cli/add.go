package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ingredient to the recipe",
		Long: `Validate an ingredient entry and append it to the recipe.

The weight is the amount for one diner; it is scaled when the recipe is
listed or exported. A weight that is not a number counts as 0 and is
rejected.

Example:
  recetario add -g Pimiento -s "Pimiento rojo" -w 100 -a Cortar`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, flags, cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func runAdd(opts *RootOptions, flags *entryFlags, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.store.StartDraft()
	flags.apply(cmd, s.store)

	if v := s.store.Commit(s.ctx(cmd)); !v.OK() {
		return rejectEntry(s.out, v)
	}

	i := s.store.Len() - 1
	view := newEntryView(i, s.store.Entries()[i], s.store.Diners())
	if s.out.IsJSON() {
		return s.out.Success(view)
	}
	fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Added %d. %s", view.Index, view.Line)))
	return nil
}
