package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
	"github.com/alnah/go-pdf2rmdoc/internal/config"
	"github.com/alnah/go-pdf2rmdoc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoInput     = errors.New("no input PDF specified")
	ErrTooManyArgs = errors.New("too many arguments")
)

// runConvert orchestrates a single conversion: flags, env, config, then
// the library pipeline. On success the output path is printed to stdout.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.help {
		printConvertUsage(env.Stdout)
		return nil
	}

	cfg, envCfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	input, err := resolveInputArg(positional)
	if err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	conv := pdf2rmdoc.NewConverter(
		pdf2rmdoc.WithRunner(env.Runner),
		pdf2rmdoc.WithLookPath(env.LookPath),
		pdf2rmdoc.WithConverterPath(flags.common.drawj2d),
		pdf2rmdoc.WithEnvPath(envCfg.ConverterPath),
		pdf2rmdoc.WithConfiguredPath(cfg.Converter.Path),
		pdf2rmdoc.WithTimeout(timeout),
	)

	result, err := conv.Convert(ctx, pdf2rmdoc.Request{
		Input:      input,
		Output:     flags.output,
		OutputDir:  cfg.Output.DefaultDir,
		Resolution: cfg.Converter.Resolution,
	})
	if err != nil {
		return withHint(err)
	}

	if flags.common.verbose {
		printVerboseResult(env, result)
	}
	fmt.Fprintln(env.Stdout, result.OutputPath)
	return nil
}

// loadSettings loads the env file, environment overrides, and config file,
// in that order. The returned config has env values applied.
func loadSettings(common *commonFlags, env *Environment) (*config.Config, *envConfig, error) {
	if err := loadEnvFile(common.envFile); err != nil {
		return nil, nil, err
	}

	warnings := env.Stderr
	if common.quiet {
		warnings = io.Discard
	}
	warnUnknownEnvVars(warnings)
	envCfg := loadEnvConfig(warnings)

	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, nil, withConfigHint(fmt.Errorf("loading config: %w", err))
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, envCfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.resolutionSet {
		n := flags.resolution
		cfg.Converter.Resolution = &n
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
}

// resolveInputArg returns the single positional input path.
func resolveInputArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected one input PDF, got %d (%s)", ErrTooManyArgs, len(args), strings.Join(args, ", "))
	}
}

// printVerboseResult writes converter details and timing to stderr.
func printVerboseResult(env *Environment, r *pdf2rmdoc.Result) {
	for _, s := range r.Converter.Skipped {
		fmt.Fprintf(env.Stderr, "skipped %s override %s (not a file)\n", s.Source, s.Path)
	}
	fmt.Fprintf(env.Stderr, "drawj2d: %s (from %s)\n", r.Converter.Path, r.Converter.Source)
	fmt.Fprintf(env.Stderr, "command: %s %s < %q\n", r.Converter.Path, strings.Join(r.Args, " "), pdf2rmdoc.BuildScript(r.InputPath))
	if out := strings.TrimSpace(r.Stdout); out != "" {
		fmt.Fprintf(env.Stderr, "drawj2d stdout:\n%s\n", out)
	}
	if errOut := strings.TrimSpace(r.Stderr); errOut != "" {
		fmt.Fprintf(env.Stderr, "drawj2d stderr:\n%s\n", errOut)
	}
	fmt.Fprintf(env.Stderr, "converted in %s\n", r.Duration.Round(time.Millisecond))
}

// withHint appends an actionable hint to known failures, keeping the
// error chain intact for exitCodeFor.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, pdf2rmdoc.ErrConverterNotFound):
		hint = hints.ForConverterNotFound()
	case errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, pdf2rmdoc.ErrOutputDir):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, pdf2rmdoc.ErrInvalidExtension):
		hint = hints.ForInvalidExtension()
	case errors.Is(err, pdf2rmdoc.ErrConverterFailed):
		hint = hints.ForConverterFailed()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// withConfigHint adds the config search hint to not-found errors.
func withConfigHint(err error) error {
	var nf *config.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nf.Searched))
	}
	return err
}
