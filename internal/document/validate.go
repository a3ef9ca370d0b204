// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// pdfExt is compared case-insensitively.
const pdfExt = ".pdf"

// Validate checks that path exists and has a .pdf extension. Any stat failure
// counts as a missing file.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return goerr.Wrap(ErrNotFound, path, goerr.V("path", path), goerr.V("stat", err.Error()))
	}
	if !strings.EqualFold(filepath.Ext(path), pdfExt) {
		return goerr.Wrap(ErrInvalidFormat, path, goerr.V("path", path))
	}
	return nil
}
