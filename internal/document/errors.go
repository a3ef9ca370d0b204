// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import "errors"

// Failure kinds returned by Validate and Reader implementations. Match them
// with errors.Is; the concrete errors carry the path as a goerr value.
var (
	ErrNotFound      = errors.New("file does not exist")
	ErrInvalidFormat = errors.New("file must be a PDF")
	ErrExtraction    = errors.New("pdf text extraction failed")
)
