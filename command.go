package pdf2rmdoc

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// OutputFormat is the drawj2d output type passed as -T<format>.
const OutputFormat = "rmdoc"

// BuildArgs returns the drawj2d arguments for writing output.
// When resolution is set, -r<n> is placed before the -o flag:
//
//	-Trmdoc [-r<n>] -o <output>
func BuildArgs(output string, resolution *int) []string {
	args := make([]string, 0, 4)
	args = append(args, "-T"+OutputFormat)
	if resolution != nil {
		args = append(args, "-r"+strconv.Itoa(*resolution))
	}
	return append(args, "-o", output)
}

// BuildScript returns the drawj2d script that embeds input as an image.
// input must be absolute; it is written with forward slashes.
func BuildScript(input string) string {
	return "image " + filepath.ToSlash(input) + "\n"
}

// ConverterError reports a drawj2d run that did not succeed.
type ConverterError struct {
	Path     string // converter executable
	ExitCode int    // -1 when the process did not exit normally
	Stdout   string
	Stderr   string
	Err      error // underlying run error
}

// Error returns "drawj2d failed:\n<detail>" where detail is the captured
// stderr, else stdout, else the run error.
func (e *ConverterError) Error() string {
	return ErrConverterFailed.Error() + ":\n" + e.Detail()
}

// Detail returns the most useful text from the failed run.
func (e *ConverterError) Detail() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	var exitErr exitCoder
	if e.Err != nil && !errors.As(e.Err, &exitErr) {
		return e.Err.Error()
	}
	return "Unknown error"
}

// Unwrap lets errors.Is match both ErrConverterFailed and the run error.
func (e *ConverterError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConverterFailed}
	}
	return []error{ErrConverterFailed, e.Err}
}

// exitCoder is implemented by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// newConverterError builds a ConverterError, extracting the exit code when
// the process ran to completion.
func newConverterError(path, stdout, stderr string, err error) *ConverterError {
	code := -1
	var exitErr exitCoder
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ConverterError{
		Path:     path,
		ExitCode: code,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}
