// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ConverterEnvVar names the environment variable that overrides the converter path.
const ConverterEnvVar = "PDF2COLOR_RMDOC_DRAWJ2D"

// ForConverterNotFound returns installation guidance when drawj2d cannot be located.
func ForConverterNotFound() string {
	return formatHints([]string{
		"if installed via Homebrew, reinstall or relink pdf2color-rmdoc",
		"otherwise install Drawj2d and ensure 'drawj2d' is in your PATH",
		"or set " + ConverterEnvVar + " to the drawj2d executable",
		"test with: drawj2d -h",
	})
}

// ForConverterFailed returns a hint for a non-zero converter exit.
func ForConverterFailed() string {
	return format("run 'pdf2rmdoc doctor' to check the drawj2d installation")
}

// ForTimeout returns a hint about increasing timeout for slow conversions.
func ForTimeout() string {
	return format("for large PDFs, raise --timeout or set it to 0 to disable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user config path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "pdf2rmdoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidExtension returns a hint when the input is not a PDF.
func ForInvalidExtension() string {
	return format("only .pdf input is supported")
}

// slashed normalizes separators so Windows paths match the search above.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints renders each hint on its own line.
func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
