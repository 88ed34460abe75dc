package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new recipe",
		Long: `Clear every ingredient and the notes, and set the number of diners
back to 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(rootOpts, cmd)
		},
	}

	return cmd
}

func runReset(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	removed := s.store.Len()
	s.store.Reset(s.ctx(cmd))

	if s.out.IsJSON() {
		return s.out.Success(map[string]int{"removed": removed})
	}
	fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Recipe reset (%d entries removed)", removed)))
	return nil
}
