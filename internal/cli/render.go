package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the export document",
		Long: `Print the lines an export would contain: the title, one line per
ingredient with the scaled weight, and the notes block when there are notes.
Fails when the recipe has no ingredients.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, cmd)
		},
	}

	return cmd
}

func runRender(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.store.Document(s.cfg.Labels)
	if err != nil {
		return storeError(s.out, err, 0)
	}

	if s.out.IsJSON() {
		return s.out.Success(doc)
	}
	for _, line := range doc.Lines() {
		fmt.Fprintln(s.out.Writer, line)
	}
	return nil
}
