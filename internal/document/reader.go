// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document validates input files and extracts their text.
package document

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"
	"go.uber.org/zap"

	"github.com/pdiddy/diet-reader/internal/telemetry"
)

// Reader extracts the text content of a file. Other formats plug in by
// implementing the same method.
type Reader interface {
	// Read returns the text of the file at path.
	Read(ctx context.Context, path string) (string, error)
}

// pageSeparator joins page texts in page order.
const pageSeparator = " "

// PDFReader extracts the embedded text layer of a PDF with
// github.com/ledongthuc/pdf. Scanned PDFs yield empty text.
type PDFReader struct {
	tracer *telemetry.Tracer
	logger *zap.Logger
}

// PDFOption configures a PDFReader.
type PDFOption func(*PDFReader)

// WithTracer records a read_pdf_file span for every Read.
func WithTracer(tr *telemetry.Tracer) PDFOption {
	return func(r *PDFReader) {
		r.tracer = tr
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) PDFOption {
	return func(r *PDFReader) {
		r.logger = logger
	}
}

// NewPDFReader creates a PDFReader.
func NewPDFReader(opts ...PDFOption) *PDFReader {
	r := &PDFReader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read opens the PDF at path and returns the text of every page joined by a
// single space. Parser failures match ErrExtraction.
func (r *PDFReader) Read(ctx context.Context, path string) (string, error) {
	args := map[string]any{"file_path": path}
	return telemetry.Observe(ctx, r.tracer, "read_pdf_file", args, func(ctx context.Context) (string, error) {
		return r.read(path)
	})
}

func (r *PDFReader) read(path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "opening pdf", goerr.V("path", path))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", goerr.Wrap(err, "reading pdf size", goerr.V("path", path))
	}

	// The parser panics on some malformed inputs instead of returning errors.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = extractionError(path, fmt.Errorf("parser panic: %v", rec))
		}
	}()

	doc, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", extractionError(path, err)
	}

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			font := p.Font(name)
			fonts[name] = &font
		}
		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", extractionError(path, fmt.Errorf("page %d: %w", i, err))
		}
		// GetPlainText starts every text object on a new line.
		pages = append(pages, strings.TrimSpace(pageText))
	}

	text = strings.Join(pages, pageSeparator)
	r.logger.Debug("extracted pdf text",
		zap.String("path", path),
		zap.Int("pages", numPages),
		zap.Int("bytes", len(text)))
	return text, nil
}

func extractionError(path string, cause error) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", ErrExtraction, cause), path, goerr.V("path", path))
}
