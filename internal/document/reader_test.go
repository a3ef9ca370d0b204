// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/pdiddy/diet-reader/internal/pdftest"
	"github.com/pdiddy/diet-reader/internal/telemetry"
	"github.com/pdiddy/diet-reader/pkg/types"
)

var _ Reader = (*PDFReader)(nil)

func TestPDFReaderRead(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{name: "single page", pages: []string{"Hello"}, want: "Hello"},
		{name: "two pages joined by one space", pages: []string{"A", "B"}, want: "A B"},
		{name: "page order preserved", pages: []string{"Breakfast", "Lunch", "Dinner"}, want: "Breakfast Lunch Dinner"},
		{name: "escaped characters", pages: []string{`Oats (100g)`}, want: "Oats (100g)"},
		{name: "no pages", pages: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := pdftest.Write(t, "diet.pdf", tt.pages...)
			got, err := NewPDFReader().Read(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPDFReaderExtractionErrors(t *testing.T) {
	valid := pdftest.Build("Hello")
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not a pdf", data: []byte("this is plain text, not a PDF")},
		{name: "empty file", data: []byte{}},
		{name: "truncated document", data: valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := pdftest.WriteRaw(t, "broken.pdf", tt.data)
			_, err := NewPDFReader().Read(context.Background(), path)
			require.ErrorIs(t, err, ErrExtraction)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestPDFReaderMissingFile(t *testing.T) {
	_, err := NewPDFReader().Read(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExtraction)
}

func TestPDFReaderEmitsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tel, err := telemetry.New(context.Background(), types.LangfuseConfig{}, telemetry.WithSpanExporter(exporter))
	require.NoError(t, err)

	r := NewPDFReader(WithTracer(tel.Tracer()))

	_, err = r.Read(context.Background(), pdftest.Write(t, "ok.pdf", "Hello"))
	require.NoError(t, err)
	_, err = r.Read(context.Background(), pdftest.WriteRaw(t, "bad.pdf", []byte("garbage")))
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	for _, s := range spans {
		assert.Equal(t, "read_pdf_file", s.Name)
	}
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestPDFReaderTrimsTextObjectBreaks(t *testing.T) {
	path := pdftest.Write(t, "plan.pdf", "Breakfast", "Dinner")

	got, err := NewPDFReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Breakfast Dinner", got)
	assert.NotContains(t, got, "\n")
}
