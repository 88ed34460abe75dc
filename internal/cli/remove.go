package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   "Remove an ingredient",
		Long: `Remove the entry at index (zero-based). Later entries move up by one.

Example:
  recetario remove 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, arg string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	i, err := parseIndex(s.out, arg)
	if err != nil {
		return err
	}

	if err := s.store.Remove(s.ctx(cmd), i); err != nil {
		return storeError(s.out, err, i)
	}

	if s.out.IsJSON() {
		return s.out.Success(map[string]int{"removed": i, "remaining": s.store.Len()})
	}
	fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Removed entry %d (%d left)", i, s.store.Len())))
	return nil
}
