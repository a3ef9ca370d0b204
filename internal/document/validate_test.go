// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/diet-reader/internal/pdftest"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "lowercase pdf extension",
			path: func(t *testing.T) string { return pdftest.WriteRaw(t, "diet.pdf", []byte("x")) },
		},
		{
			name: "uppercase pdf extension",
			path: func(t *testing.T) string { return pdftest.WriteRaw(t, "a.PDF", []byte("x")) },
		},
		{
			name: "mixed case pdf extension",
			path: func(t *testing.T) string { return pdftest.WriteRaw(t, "plan.Pdf", []byte("x")) },
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.pdf") },
			wantErr: ErrNotFound,
		},
		{
			name:    "missing file with wrong extension reports not found first",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.txt") },
			wantErr: ErrNotFound,
		},
		{
			name:    "existing text file",
			path:    func(t *testing.T) string { return pdftest.WriteRaw(t, "diet.txt", []byte("x")) },
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "no extension",
			path:    func(t *testing.T) string { return pdftest.WriteRaw(t, "pdf", []byte("x")) },
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "pdf in the middle of the name",
			path:    func(t *testing.T) string { return pdftest.WriteRaw(t, "diet.pdf.bak", []byte("x")) },
			wantErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			err := Validate(path)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), path)
		})
	}
}
