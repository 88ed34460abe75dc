package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NewDinersCommand creates the diners command.
func NewDinersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diners [n]",
		Short: "Show or set the number of diners",
		Long: `Show the number of diners, or set it to n. Every weight is multiplied
by this number. n must be at least 1; otherwise the current value is kept.

Example:
  recetario diners 4`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiners(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDiners(opts *RootOptions, args []string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return s.out.Fail(ExitCommandError, ErrCodeBadArgument, fmt.Sprintf("invalid number of diners %q", args[0]), nil)
		}
		if err := s.store.SetDiners(s.ctx(cmd), n); err != nil {
			return storeError(s.out, err, 0)
		}
	}

	if s.out.IsJSON() {
		return s.out.Success(map[string]int{"diners": s.store.Diners()})
	}
	if len(args) == 1 {
		fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Diners set to %d", s.store.Diners())))
		return nil
	}
	fmt.Fprintln(s.out.Writer, s.store.Diners())
	return nil
}
