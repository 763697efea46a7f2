package main

// Notes:
// - exitCodeFor: we test every sentinel from the library, config and CLI,
//   plus wrapped errors to verify the errors.Is() chain.
// - Converter errors that also wrap an I/O cause must still map to the
//   converter code.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
	"github.com/alnah/go-pdf2rmdoc/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Converter errors (exit 4)
		{"converter not found", pdf2rmdoc.ErrConverterNotFound, ExitConverter},
		{"converter failed", pdf2rmdoc.ErrConverterFailed, ExitConverter},
		{"output missing", pdf2rmdoc.ErrOutputMissing, ExitConverter},
		{"converter error type", &pdf2rmdoc.ConverterError{Stderr: "boom"}, ExitConverter},
		{"timeout", fmt.Errorf("%w: %w", pdf2rmdoc.ErrConverterFailed, context.DeadlineExceeded), ExitConverter},
		{"failed exec with permission", fmt.Errorf("%w: %w", pdf2rmdoc.ErrConverterFailed, os.ErrPermission), ExitConverter},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found type", &config.NotFoundError{Searched: []string{"a.yaml"}}, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid timeout", config.ErrInvalidTimeout, ExitUsage},
		{"empty input", pdf2rmdoc.ErrEmptyInput, ExitUsage},
		{"invalid extension", pdf2rmdoc.ErrInvalidExtension, ExitUsage},
		{"input not file", pdf2rmdoc.ErrInputNotFile, ExitUsage},
		{"output is directory", pdf2rmdoc.ErrOutputIsDirectory, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input not found", pdf2rmdoc.ErrInputNotFound, ExitIO},
		{"output dir", pdf2rmdoc.ErrOutputDir, ExitIO},
		{"env file", ErrEnvFile, ExitIO},
		{"wrapped input not found", fmt.Errorf("x: %w", pdf2rmdoc.ErrInputNotFound), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("something else"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	codes := map[string]int{"ExitIO": ExitIO, "ExitConverter": ExitConverter}
	seen := map[int]string{0: "ExitSuccess", 1: "ExitGeneral", 2: "ExitUsage"}
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, custom codes must be < 126", name, code)
		}
		if other, dup := seen[code]; dup {
			t.Errorf("%s duplicates %s (%d)", name, other, code)
		}
		seen[code] = name
	}
}
