package pdf2rmdoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-pdf2rmdoc/internal/fileutil"
)

// dirPermissions is used for created output directories (rwxr-x---).
const dirPermissions = 0o750

// Converter runs the PDF to rmdoc pipeline.
// Create with NewConverter; a Converter is safe for sequential reuse.
type Converter struct {
	runner  CommandRunner
	resolve ResolveOptions
	timeout time.Duration
}

// NewConverter creates a Converter that reads PDF2COLOR_RMDOC_DRAWJ2D and
// runs drawj2d with os/exec. Use options to customize behavior.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		runner:  &ExecRunner{},
		resolve: DefaultResolveOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert validates req, runs drawj2d, and verifies the output.
// The converter is not resolved or started unless the input is valid.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	input, err := ValidateInput(req.Input)
	if err != nil {
		return nil, err
	}

	output, err := ResolveOutputPath(input, req.Output, req.OutputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOutputDir, filepath.Dir(output), err)
	}

	if fileutil.DirExists(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputIsDirectory, output)
	}

	exe, err := ResolveConverter(c.resolve)
	if err != nil {
		return nil, err
	}

	args := BuildArgs(output, req.Resolution)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	stdout, stderr, err := c.runner.Run(ctx, exe.Path, args, BuildScript(input))
	duration := time.Since(start)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrConverterFailed, ctxErr)
		}
		return nil, newConverterError(exe.Path, stdout, stderr, err)
	}

	if !fileutil.FileExists(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputMissing, output)
	}

	return &Result{
		InputPath:  input,
		OutputPath: output,
		Converter:  exe,
		Args:       args,
		Stdout:     stdout,
		Stderr:     stderr,
		Duration:   duration,
	}, nil
}

// ValidateInput expands and absolutizes path and checks, in order, that it
// exists, has a .pdf extension, and is a regular file.
func ValidateInput(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyInput
	}

	abs, err := fileutil.AbsPath(path)
	if err != nil {
		return "", fmt.Errorf("resolving input path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, abs)
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	if !fileutil.HasExt(abs, InputExt) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, abs)
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrInputNotFile, abs)
	}

	return abs, nil
}

// ResolveOutputPath returns the absolute output path.
//
// Priority: explicit output > outputDir/<input name>.rmdoc > input with .rmdoc.
// input must already be absolute.
func ResolveOutputPath(input, output, outputDir string) (string, error) {
	if output != "" {
		abs, err := fileutil.AbsPath(output)
		if err != nil {
			return "", fmt.Errorf("resolving output path: %w", err)
		}
		return abs, nil
	}

	derived := fileutil.ReplaceExt(input, OutputExt)
	if outputDir == "" {
		return derived, nil
	}

	dir, err := fileutil.AbsPath(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	return filepath.Join(dir, filepath.Base(derived)), nil
}
