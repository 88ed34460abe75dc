package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/ui"
)

// NotesOptions holds flags for the notes command.
type NotesOptions struct {
	*RootOptions
	Clear bool
}

// NewNotesCommand creates the notes command.
func NewNotesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NotesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "notes [text...]",
		Short: "Show or replace the recipe notes",
		Long: `Show the notes, or replace them with text. Use "-" to read the notes
from standard input, which allows several lines.

Example:
  recetario notes "Servir caliente."
  recetario notes - < notas.txt
  recetario notes --clear`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotes(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "remove the notes")

	return cmd
}

func runNotes(opts *NotesOptions, args []string, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if opts.Clear && len(args) > 0 {
		return s.out.Fail(ExitCommandError, ErrCodeBadArgument, "--clear takes no text", nil)
	}

	update := opts.Clear || len(args) > 0
	if update {
		var text string
		switch {
		case opts.Clear:
		case len(args) == 1 && args[0] == "-":
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return s.out.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("reading notes: %v", err), nil)
			}
			text = string(data)
		default:
			text = strings.Join(args, " ")
		}
		s.store.SetNotes(s.ctx(cmd), text)
	}

	if s.out.IsJSON() {
		return s.out.Success(map[string]string{"notes": s.store.Notes()})
	}
	switch {
	case opts.Clear:
		fmt.Fprintln(s.out.Writer, ui.RenderPass("Notes cleared"))
	case update:
		fmt.Fprintln(s.out.Writer, ui.RenderPass("Notes saved"))
	default:
		fmt.Fprintln(s.out.Writer, s.store.Notes())
	}
	return nil
}
