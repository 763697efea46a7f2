package pdf2rmdoc

import "time"

// OutputExt is the extension given to derived output paths.
const OutputExt = ".rmdoc"

// InputExt is the only accepted input extension (case-insensitive).
const InputExt = ".pdf"

// Request contains conversion parameters.
type Request struct {
	Input      string // PDF path (required); "~" is expanded
	Output     string // .rmdoc path (optional); "~" is expanded
	OutputDir  string // directory for the derived output when Output is empty (optional)
	Resolution *int   // forwarded as -r<n> (optional)
}

// Result describes a successful conversion.
type Result struct {
	InputPath  string        // absolute input path
	OutputPath string        // absolute output path, verified to exist
	Converter  Executable    // drawj2d binary that was run
	Args       []string      // arguments passed to the converter
	Stdout     string        // captured converter stdout
	Stderr     string        // captured converter stderr
	Duration   time.Duration // time spent in the converter
}

// Option configures a Converter.
type Option func(*Converter)

// WithRunner sets the command runner. Used by tests to avoid real subprocesses.
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) {
		c.runner = r
	}
}

// WithConverterPath sets an explicit drawj2d path that must exist.
func WithConverterPath(path string) Option {
	return func(c *Converter) {
		c.resolve.Flag = path
	}
}

// WithEnvPath overrides the value read from PDF2COLOR_RMDOC_DRAWJ2D.
// Pass "" to ignore the environment.
func WithEnvPath(path string) Option {
	return func(c *Converter) {
		c.resolve.Env = path
	}
}

// WithConfiguredPath sets a converter path from configuration. It is used
// only when it names an existing file.
func WithConfiguredPath(path string) Option {
	return func(c *Converter) {
		c.resolve.Config = path
	}
}

// WithLookPath replaces exec.LookPath for the PATH search.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Converter) {
		c.resolve.LookPath = fn
	}
}

// WithTimeout bounds each converter run. Zero means no timeout.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("pdf2rmdoc: WithTimeout duration must not be negative")
	}
	return func(c *Converter) {
		c.timeout = d
	}
}
