package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page layout in millimetres. The title sits at the top-left, each following
// line 10mm below the previous one.
const (
	pdfMarginX    = 10.0
	pdfTitleY     = 10.0
	pdfFirstLineY = 20.0
	pdfLineStep   = 10.0
	pdfBottom     = 10.0

	pdfFont       = "Helvetica"
	pdfTitleSize  = 16.0
	pdfBodySize   = 12.0
	pdfCreatorTag = "recetario"
)

// PDFSink renders the document onto A4 pages and writes <Dir>/<Name>.pdf.
type PDFSink struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string

	// Now stamps the PDF creation date. Defaults to time.Now.
	Now func() time.Time
}

// Path returns the file the sink writes for doc name.
func (s *PDFSink) Path(name string) string {
	return filepath.Join(s.Dir, name+".pdf")
}

// Write implements Sink.
func (s *PDFSink) Write(ctx context.Context, job Job) (Artifact, error) {
	doc := job.Document
	lines := doc.Lines()

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreator(pdfCreatorTag, true)
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Name, false)
	pdf.SetKeywords(job.ID, false)
	pdf.SetCreationDate(now())

	// Core fonts are cp1252; accented ingredient names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	_, pageH := pdf.GetPageSize()

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.Text(pdfMarginX, pdfTitleY, tr(doc.Title))

	pdf.SetFont(pdfFont, "", pdfBodySize)
	y := pdfFirstLineY
	for _, line := range lines[1:] {
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
		if y > pageH-pdfBottom {
			pdf.AddPage()
			pdf.SetFont(pdfFont, "", pdfBodySize)
			y = pdfTitleY
		}
		pdf.Text(pdfMarginX, y, tr(line))
		y += pdfLineStep
	}

	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return Artifact{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	path := s.Path(doc.Name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", path, err)
	}

	return Artifact{ID: job.ID, Format: FormatPDF, Path: path, Lines: len(lines)}, nil
}
