package main

import (
	"errors"
	"os"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
	"github.com/alnah/go-pdf2rmdoc/internal/config"
)

// Exit codes for pdf2rmdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or input validation
	ExitIO        = 3 // File not found, permission denied
	ExitConverter = 4 // drawj2d missing or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter errors (exit 4). Checked first: a failed exec may also
	// wrap os.ErrPermission.
	if errors.Is(err, pdf2rmdoc.ErrConverterNotFound) ||
		errors.Is(err, pdf2rmdoc.ErrConverterFailed) ||
		errors.Is(err, pdf2rmdoc.ErrOutputMissing) {
		return ExitConverter
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, pdf2rmdoc.ErrEmptyInput) ||
		errors.Is(err, pdf2rmdoc.ErrInvalidExtension) ||
		errors.Is(err, pdf2rmdoc.ErrInputNotFile) ||
		errors.Is(err, pdf2rmdoc.ErrOutputIsDirectory) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdf2rmdoc.ErrInputNotFound) ||
		errors.Is(err, pdf2rmdoc.ErrOutputDir) ||
		errors.Is(err, ErrEnvFile) {
		return ExitIO
	}

	return ExitGeneral
}
