package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// catalogView is the JSON shape of the whole catalog.
type catalogView struct {
	Generics []groupView `json:"generics"`
	Actions  []string    `json:"actions"`
}

type groupView struct {
	Name      string   `json:"name"`
	Specifics []string `json:"specifics"`
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [generic]",
		Short: "List ingredients and actions",
		Long: `List the generic ingredients with their specific variants and the
preparation actions. With an argument, list only the specific variants of
that generic ingredient; an unknown name lists nothing.

Example:
  recetario catalog
  recetario catalog Pimiento`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCatalog(opts *RootOptions, args []string, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	_, cat, err := loadSettings(opts, out)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		specifics := cat.SpecificOptionsFor(args[0])
		if out.IsJSON() {
			return out.Success(groupView{Name: args[0], Specifics: specifics})
		}
		for _, s := range specifics {
			fmt.Fprintln(out.Writer, s)
		}
		return nil
	}

	view := catalogView{Actions: cat.Actions()}
	for _, g := range cat.Groups() {
		view.Generics = append(view.Generics, groupView{Name: g.Generic, Specifics: g.Specifics})
	}
	if out.IsJSON() {
		return out.Success(view)
	}

	fmt.Fprintln(out.Writer, ui.RenderTitle("Ingredients"))
	for _, g := range view.Generics {
		fmt.Fprintln(out.Writer, ui.RenderGroup(g.Name, g.Specifics))
	}
	fmt.Fprintln(out.Writer)
	fmt.Fprintln(out.Writer, ui.RenderTitle("Actions"))
	for _, a := range view.Actions {
		fmt.Fprintf(out.Writer, "  %s %s\n", ui.RenderMuted(ui.Bullet), a)
	}
	return nil
}
