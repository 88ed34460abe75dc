package cli

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/recetario/internal/export"
	"github.com/roach88/recetario/internal/recipe"
	"github.com/roach88/recetario/internal/ui"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	OutDir string
	To     string

	// IDGenerator allows overriding the export ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator export.IDGenerator

	// Now allows overriding the PDF creation date (for testing).
	Now func() time.Time
}

// exportView is the JSON result of an export. Text holds the document when
// exporting as text, since stdout carries the JSON envelope.
type exportView struct {
	export.Artifact
	Text string `json:"text,omitempty"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return newExportCommand(&ExportOptions{RootOptions: rootOpts})
}

func newExportCommand(opts *ExportOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the recipe as a document",
		Long: `Export the recipe. As PDF (the default) the document is written to
<out>/<file_name>.pdf; as text it is printed to standard output.
Nothing is exported when the recipe has no ingredients.

Example:
  recetario export
  recetario export --out ./recetas
  recetario export --to text`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "output directory (default from config, else current directory)")
	cmd.Flags().StringVar(&opts.To, "to", string(export.FormatPDF), "export format (pdf|text)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	format, err := export.ParseFormat(opts.To)
	if err != nil {
		return s.out.Fail(ExitCommandError, ErrCodeBadArgument, err.Error(), nil)
	}

	if !s.store.CanExport() {
		return storeError(s.out, recipe.ErrNothingToExport, 0)
	}
	doc, err := s.store.Document(s.cfg.Labels)
	if err != nil {
		return storeError(s.out, err, 0)
	}

	var (
		sink export.Sink
		text bytes.Buffer
	)
	switch format {
	case export.FormatText:
		if s.out.IsJSON() {
			sink = &export.TextSink{W: &text}
		} else {
			sink = &export.TextSink{W: s.out.Writer}
		}
	default:
		dir := opts.OutDir
		if dir == "" {
			dir = s.cfg.OutputDir
		}
		sink = &export.PDFSink{Dir: dir, Now: opts.Now}
	}

	exportOpts := []export.Option{export.WithLogger(s.log)}
	if opts.IDGenerator != nil {
		exportOpts = append(exportOpts, export.WithIDGenerator(opts.IDGenerator))
	}
	exp := export.NewExporter(sink, exportOpts...)

	art, err := exp.Export(s.ctx(cmd), doc)
	if err != nil {
		if errors.Is(err, recipe.ErrNothingToExport) {
			return storeError(s.out, err, 0)
		}
		return s.out.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
	}

	if s.out.IsJSON() {
		return s.out.Success(exportView{Artifact: art, Text: text.String()})
	}
	if format == export.FormatPDF {
		fmt.Fprintln(s.out.Writer, ui.RenderPass(fmt.Sprintf("Exported %s", art.Path)))
	}
	s.out.VerboseLog("Export ID %s, %d line(s)", art.ID, art.Lines)
	return nil
}
