package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
	"github.com/alnah/go-pdf2rmdoc/internal/config"
)

// probeTimeout bounds the "drawj2d -h" run.
const probeTimeout = 10 * time.Second

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"`
	Converter converterInfo `json:"converter"`
	Java      javaInfo      `json:"java"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Config    string        `json:"config,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds drawj2d detection results.
type converterInfo struct {
	Found   bool     `json:"found"`
	Path    string   `json:"path,omitempty"`
	Source  string   `json:"source,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
	Runs    bool     `json:"runs"`
	Banner  string   `json:"banner,omitempty"`
}

// javaInfo reports whether a java runtime is on PATH. drawj2d is a Java
// program; Homebrew installs bundle one, so absence is only a warning.
type javaInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds platform and override details.
type envInfo struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DrawJ2DPath string `json:"drawj2d_env"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v: %v\n", ErrUsage, err)
		printDoctorUsage(env.Stderr)
		return ExitUsage
	}
	if flags.help {
		printDoctorUsage(env.Stdout)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	result := runDoctor(ctx, &flags.common, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result, flags.common.verbose)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, common *commonFlags, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:          runtime.GOOS,
			Arch:        runtime.GOARCH,
			DrawJ2DPath: os.Getenv(envDrawj2d),
		},
	}

	// Settings errors are reported, not fatal: the converter checks still run.
	cfg, envCfg, err := loadSettings(common, &Environment{Stdout: env.Stdout, Stderr: io.Discard})
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		cfg, envCfg = config.DefaultConfig(), &envConfig{ConverterPath: result.Env.DrawJ2DPath}
	}
	if data, err := config.Marshal(cfg); err == nil {
		result.Config = strings.TrimSpace(string(data))
	}

	checkConverter(ctx, result, pdf2rmdoc.ResolveOptions{
		Flag:     common.drawj2d,
		Env:      envCfg.ConverterPath,
		Config:   cfg.Converter.Path,
		LookPath: env.LookPath,
	}, env.Runner)
	checkJava(result, env.LookPath)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkConverter resolves drawj2d and runs "drawj2d -h" to confirm it starts.
func checkConverter(ctx context.Context, result *doctorResult, opts pdf2rmdoc.ResolveOptions, runner pdf2rmdoc.CommandRunner) {
	exe, err := pdf2rmdoc.ResolveConverter(opts)
	for _, s := range exe.Skipped {
		result.Converter.Skipped = append(result.Converter.Skipped, fmt.Sprintf("%s: %s", s.Source, s.Path))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s override %s is not a file, ignored", s.Source, s.Path))
	}
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	result.Converter.Found = true
	result.Converter.Path = exe.Path
	result.Converter.Source = string(exe.Source)

	if runner == nil {
		runner = &pdf2rmdoc.ExecRunner{}
	}
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	stdout, stderr, err := runner.Run(probeCtx, exe.Path, []string{"-h"}, "")
	banner := firstLine(stdout)
	if banner == "" {
		banner = firstLine(stderr)
	}
	result.Converter.Banner = banner

	switch {
	case errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("drawj2d -h did not finish within %s", probeTimeout))
	case err != nil && banner == "":
		// Some drawj2d builds exit non-zero on -h; only silence is suspicious.
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("drawj2d -h failed: %v", err))
	default:
		result.Converter.Runs = true
	}
}

// checkJava looks for a java executable on PATH.
func checkJava(result *doctorResult, lookPath func(string) (string, error)) {
	if lookPath == nil {
		return
	}
	p, err := lookPath("java")
	if err != nil || p == "" {
		result.Warnings = append(result.Warnings,
			"java not found in PATH (fine if drawj2d bundles its own runtime)")
		return
	}
	result.Java.Found = true
	result.Java.Path = p
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	f, err := os.CreateTemp(tmpDir, "pdf2rmdoc-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(filepath.Clean(name))
	result.System.TempWritable = true
}

// firstLine returns the first non-blank line of s.
func firstLine(s string) string {
	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult, showConfig bool) {
	fmt.Fprintln(w, "pdf2rmdoc doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "drawj2d")
	if r.Converter.Found {
		fmt.Fprintf(w, "  [OK] Found at %s (from %s)\n", r.Converter.Path, r.Converter.Source)
		if r.Converter.Runs {
			if r.Converter.Banner != "" {
				fmt.Fprintf(w, "  [OK] Runs: %s\n", r.Converter.Banner)
			} else {
				fmt.Fprintln(w, "  [OK] Runs")
			}
		} else {
			fmt.Fprintln(w, "  [WARN] Could not run drawj2d -h")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	if r.Java.Found {
		fmt.Fprintf(w, "  [OK] java: %s\n", r.Java.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.DrawJ2DPath != "" {
		fmt.Fprintf(w, "  [OK] %s=%s\n", envDrawj2d, r.Env.DrawJ2DPath)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if showConfig && r.Config != "" {
		fmt.Fprintln(w, "Effective config")
		for line := range strings.SplitSeq(r.Config, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
