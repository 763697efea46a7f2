package pdf2rmdoc

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-pdf2rmdoc/internal/fileutil"
)

// ConverterName is the executable searched for on PATH.
const ConverterName = "drawj2d"

// EnvConverterPath names the environment variable that overrides the
// converter location (set by the Homebrew formula wrapper).
const EnvConverterPath = "PDF2COLOR_RMDOC_DRAWJ2D"

// Source identifies where the converter path came from.
type Source string

// Converter path sources, in precedence order.
const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceConfig Source = "config"
	SourcePath   Source = "PATH"
)

// Executable is a resolved converter binary.
type Executable struct {
	Path    string
	Source  Source
	Skipped []SkippedOverride // overrides that were set but unusable
}

// SkippedOverride records an override that did not name a usable file.
type SkippedOverride struct {
	Source Source
	Path   string
}

// ResolveOptions are the inputs to ResolveConverter.
// Empty strings mean "not set".
type ResolveOptions struct {
	Flag   string // explicit path; must exist when set
	Env    string // value of PDF2COLOR_RMDOC_DRAWJ2D
	Config string // converter.path from the config file

	// LookPath searches the executable search path. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
	// IsFile reports whether a path is an existing regular file.
	// Defaults to fileutil.FileExists.
	IsFile func(path string) bool
}

// DefaultResolveOptions returns options populated from the process
// environment.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{Env: os.Getenv(EnvConverterPath)}
}

// ResolveConverter locates the drawj2d executable.
//
// An explicit Flag path wins and is an error when it is not a file. Env and
// Config overrides are used when they name an existing file and are
// otherwise recorded in Executable.Skipped. PATH is searched last.
// Returns ErrConverterNotFound when nothing matches.
func ResolveConverter(opts ResolveOptions) (Executable, error) {
	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	isFile := opts.IsFile
	if isFile == nil {
		isFile = fileutil.FileExists
	}

	if flag := strings.TrimSpace(opts.Flag); flag != "" {
		p := fileutil.ExpandHome(flag)
		if !isFile(p) {
			return Executable{}, fmt.Errorf("%w: %s is not a file", ErrConverterNotFound, p)
		}
		return Executable{Path: p, Source: SourceFlag}, nil
	}

	var skipped []SkippedOverride
	overrides := []struct {
		source Source
		value  string
	}{
		{SourceEnv, opts.Env},
		{SourceConfig, opts.Config},
	}
	for _, o := range overrides {
		v := strings.TrimSpace(o.value)
		if v == "" {
			continue
		}
		p := fileutil.ExpandHome(v)
		if isFile(p) {
			return Executable{Path: p, Source: o.source, Skipped: skipped}, nil
		}
		skipped = append(skipped, SkippedOverride{Source: o.source, Path: p})
	}

	p, err := lookPath(ConverterName)
	if err != nil || p == "" {
		return Executable{Skipped: skipped}, fmt.Errorf("%w in PATH", ErrConverterNotFound)
	}
	return Executable{Path: p, Source: SourcePath, Skipped: skipped}, nil
}
