package export

import (
	"bufio"
	"context"
	"io"
)

// TextSink writes the document lines, one per line, to W.
type TextSink struct {
	W io.Writer
}

// Write implements Sink.
func (s *TextSink) Write(ctx context.Context, job Job) (Artifact, error) {
	lines := job.Document.Lines()

	bw := bufio.NewWriter(s.W)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return Artifact{}, err
		}
	}
	if err := bw.Flush(); err != nil {
		return Artifact{}, err
	}

	return Artifact{ID: job.ID, Format: FormatText, Lines: len(lines)}, nil
}
