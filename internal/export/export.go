// Package export turns a rendered recipe document into a deliverable:
// a PDF file or a plain-text stream.
//
// The recipe core only depends on the Sink interface. Sinks receive the
// document lines in order and own layout entirely.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/recetario/internal/recipe"
)

// Format names an export format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatText:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q: must be one of [pdf text]", s)
}

// Job is one export request handed to a sink.
type Job struct {
	ID       string
	Document recipe.Document
}

// Artifact describes what a sink produced.
type Artifact struct {
	ID     string `json:"id"`
	Format Format `json:"format"`
	// Path is the written file, empty for stream sinks.
	Path  string `json:"path,omitempty"`
	Lines int    `json:"lines"`
}

// Sink consumes the lines of a document and produces a deliverable.
type Sink interface {
	Write(ctx context.Context, job Job) (Artifact, error)
}

// Exporter stamps documents with an ID and hands them to a sink.
type Exporter struct {
	sink Sink
	ids  IDGenerator
	log  *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithIDGenerator overrides the default UUIDv7 generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Exporter) { e.ids = g }
}

// WithLogger sets the exporter's logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Exporter) { e.log = log }
}

// NewExporter creates an exporter writing to sink.
func NewExporter(sink Sink, opts ...Option) *Exporter {
	e := &Exporter{sink: sink, ids: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	return e
}

// Export writes doc through the sink.
// A document without steps is refused with recipe.ErrNothingToExport and
// nothing is produced.
func (e *Exporter) Export(ctx context.Context, doc recipe.Document) (Artifact, error) {
	if len(doc.Steps) == 0 {
		return Artifact{}, recipe.ErrNothingToExport
	}
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	job := Job{ID: e.ids.Generate(), Document: doc}
	e.log.Debug("exporting recipe", "id", job.ID, "name", doc.Name, "steps", len(doc.Steps))

	art, err := e.sink.Write(ctx, job)
	if err != nil {
		return Artifact{}, fmt.Errorf("export %s: %w", job.ID, err)
	}

	e.log.Info("recipe exported", "id", art.ID, "format", art.Format, "path", art.Path)
	return art, nil
}
