package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/script"
	"github.com/roach88/recetario/internal/ui"
)

// applyView is the JSON result of a script run.
type applyView struct {
	Script  string              `json:"script"`
	Results []script.StepResult `json:"results"`
	Failed  int                 `json:"failed"`
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <script.yaml>",
		Short: "Apply a recipe script",
		Long: `Run the steps of a YAML recipe script against the recipe, in order.
A failing step is reported and the script carries on; the command fails if
any step failed.

Script format:
  name: pimientos
  steps:
    - add: {generic: Pimiento, specific: Pimiento rojo, weight: 100, action: Cortar}
    - edit: {index: 0, weight: 150}
    - remove: 1
    - diners: 2
    - notes: "Servir caliente."`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runApply(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	sc, err := script.LoadFile(path)
	if err != nil {
		code := ErrCodeScriptInvalid
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return out.Fail(ExitCommandError, code, err.Error(), nil)
	}

	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.out.VerboseLog("Applying %d step(s) from %s", len(sc.Steps), sc.Name)
	results := script.Apply(s.ctx(cmd), s.store, sc, s.log)
	failed := script.Failed(results)

	if s.out.IsJSON() {
		if err := s.out.Success(applyView{Script: sc.Name, Results: results, Failed: failed}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			label := fmt.Sprintf("step %d: %s", r.Index, r.Op)
			if r.OK {
				fmt.Fprintln(s.out.Writer, ui.RenderPass(label))
			} else {
				fmt.Fprintln(s.out.Writer, ui.RenderFail(label+": "+r.Reason))
			}
		}
		fmt.Fprintf(s.out.Writer, "\n%d/%d step(s) applied\n", len(results)-failed, len(results))
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d step(s) failed", ErrCodeScriptFailures, failed))
	}
	return nil
}
