package runoff2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilSource = errors.New("input source cannot be nil")
	ErrNilSink   = errors.New("output sink cannot be nil")

	// Stream failures. These are the only fatal conditions during a run.
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")

	// Configuration validation errors.
	ErrInvalidDocumentClass = errors.New("invalid document class")
	ErrInvalidFlagChar      = errors.New("invalid flag character")
)
