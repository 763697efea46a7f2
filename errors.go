package pdf2rmdoc

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrEmptyInput       = errors.New("input path cannot be empty")
	ErrInputNotFound    = errors.New("input file not found")
	ErrInputNotFile     = errors.New("input is not a regular file")
	ErrInvalidExtension = errors.New("input must be a .pdf")

	// Output errors.
	ErrOutputIsDirectory = errors.New("output is a directory")
	ErrOutputDir         = errors.New("failed to create output directory")
	ErrOutputMissing     = errors.New("conversion finished but output .rmdoc not found")

	// Converter errors.
	ErrConverterNotFound = errors.New("'drawj2d' not found")
	ErrConverterFailed   = errors.New("drawj2d failed")
)
