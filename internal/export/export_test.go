package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recetario/internal/recipe"
)

func testDocument(t *testing.T) recipe.Document {
	t.Helper()
	doc, err := recipe.RenderDocument([]recipe.Entry{
		{Generic: "Pimiento", Specific: "Pimiento rojo", Weight: 100, Action: "Cortar"},
		{Generic: "Pimiento", Specific: "Pimiento verde", Weight: 12.5, Action: "Freír"},
	}, 2, "Servir caliente.", recipe.DefaultLabels())
	require.NoError(t, err)
	return doc
}

// recordingSink captures jobs instead of producing output.
type recordingSink struct {
	jobs []Job
	err  error
}

func (s *recordingSink) Write(ctx context.Context, job Job) (Artifact, error) {
	if s.err != nil {
		return Artifact{}, s.err
	}
	s.jobs = append(s.jobs, job)
	return Artifact{ID: job.ID, Format: FormatText, Lines: len(job.Document.Lines())}, nil
}

func TestExporter_StampsID(t *testing.T) {
	sink := &recordingSink{}
	e := NewExporter(sink, WithIDGenerator(NewFixedGenerator("export-1", "export-2")))

	art, err := e.Export(context.Background(), testDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "export-1", art.ID)
	assert.Equal(t, 5, art.Lines)

	art, err = e.Export(context.Background(), testDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "export-2", art.ID)

	require.Len(t, sink.jobs, 2)
	assert.Equal(t, "receta", sink.jobs[0].Document.Name)
}

func TestExporter_NothingToExport(t *testing.T) {
	sink := &recordingSink{}
	e := NewExporter(sink, WithIDGenerator(NewFixedGenerator()))

	_, err := e.Export(context.Background(), recipe.Document{Title: "Receta"})
	assert.ErrorIs(t, err, recipe.ErrNothingToExport)
	assert.Empty(t, sink.jobs)
}

func TestExporter_CancelledContext(t *testing.T) {
	sink := &recordingSink{}
	e := NewExporter(sink, WithIDGenerator(NewFixedGenerator()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Export(ctx, testDocument(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.jobs)
}

func TestExporter_SinkErrorWrapped(t *testing.T) {
	boom := errors.New("disk full")
	var logs bytes.Buffer
	e := NewExporter(&recordingSink{err: boom},
		WithIDGenerator(NewFixedGenerator("export-9")),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	_, err := e.Export(context.Background(), testDocument(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "export-9")
	assert.NotContains(t, logs.String(), "recipe exported")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("docx")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestUUIDv7Generator(t *testing.T) {
	g := UUIDv7Generator{}
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
}

func TestFixedGenerator_Exhausted(t *testing.T) {
	g := NewFixedGenerator("only")
	assert.Equal(t, "only", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}
