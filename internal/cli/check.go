package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/recipe"
	"github.com/roach88/recetario/internal/ui"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an entry without adding it",
		Long: `Validate an ingredient entry against the catalog without changing the
recipe. Reports the first rule the entry breaks.

Example:
  recetario check -g Pimiento -s "Pimiento rojo" -w 100 -a Cortar`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, flags, cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func runCheck(opts *RootOptions, flags *entryFlags, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	_, cat, err := loadSettings(opts, out)
	if err != nil {
		return err
	}

	// A throwaway store: check never persists.
	st := recipe.NewStore(cat)
	v, _ := flags.apply(cmd, st)
	if !v.OK() {
		return rejectEntry(out, v)
	}

	if out.IsJSON() {
		return out.Success(map[string]bool{"valid": true})
	}
	fmt.Fprintln(out.Writer, ui.RenderPass("Entry is valid"))
	return nil
}
