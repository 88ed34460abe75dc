package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Change an ingredient in place",
		Long: `Change the given fields of the entry at index (zero-based, as shown by
list). Fields not given keep their value, except that a new generic
ingredient clears the specific one, so both must be given together.

The entry keeps its position. An invalid result leaves the entry unchanged.

Example:
  recetario edit 0 -w 150
  recetario edit 1 -g Cebolla -s "Cebolla morada"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, flags, args[0], cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func runEdit(opts *RootOptions, flags *entryFlags, arg string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	i, err := parseIndex(s.out, arg)
	if err != nil {
		return err
	}

	if err := s.store.BeginEdit(i); err != nil {
		return storeError(s.out, err, i)
	}

	if _, changed := flags.apply(cmd, s.store); changed == 0 {
		s.store.CancelEdit()
		return s.out.Fail(ExitCommandError, ErrCodeBadArgument,
			"nothing to change: give at least one of --generic, --specific, --weight, --action", nil)
	}

	if v := s.store.Commit(s.ctx(cmd)); !v.OK() {
		s.store.CancelEdit()
		return rejectEntry(s.out, v)
	}

	view := newEntryView(i, s.store.Entries()[i], s.store.Diners())
	if s.out.IsJSON() {
		return s.out.Success(view)
	}
	fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Updated %d. %s", view.Index, view.Line)))
	return nil
}
