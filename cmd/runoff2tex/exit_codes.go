package main

import (
	"errors"
	"os"

	runoff2tex "github.com/alnah/go-runoff2tex"
	"github.com/alnah/go-runoff2tex/internal/config"
)

// Exit codes for the runoff2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful translation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, stream failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrOpenInput) ||
		errors.Is(err, ErrCreateOutput) ||
		errors.Is(err, runoff2tex.ErrReadInput) ||
		errors.Is(err, runoff2tex.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrBadFlagBinding) ||
		errors.Is(err, ErrBadPolicy) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, runoff2tex.ErrInvalidDocumentClass) ||
		errors.Is(err, runoff2tex.ErrInvalidFlagChar) {
		return ExitUsage
	}

	return ExitGeneral
}
