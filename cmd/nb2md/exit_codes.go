package main

import (
	"errors"
	"os"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/config"
	"github.com/alnah/go-nb2md/internal/dateutil"
)

// Exit codes for the nb2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, including validation failures
	ExitUsage   = 2 // Invalid flags, config, or argument values
	ExitIO      = 3 // File not found, permission denied, unwritable output
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
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadNotebook) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteMarkdown) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, ErrWriteReport) {
		return ExitIO
	}

	// Usage/config/validation-of-input errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, nb2md.ErrEmptyTitle) ||
		errors.Is(err, nb2md.ErrEmptyLayout) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	// Everything else, including notebook parse failures and posts that
	// fail image validation (the original tool exits 1 on both).
	return ExitGeneral
}
