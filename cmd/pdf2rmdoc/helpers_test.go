package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake drawj2d and environment
// ---------------------------------------------------------------------------

const fakeDrawj2dPath = "/usr/local/bin/drawj2d"

type drawj2dCall struct {
	name  string
	args  []string
	stdin string
}

// fakeDrawj2d is a CommandRunner that records calls and, when writeOutput
// is set, creates the file named after -o like the real converter would.
type fakeDrawj2d struct {
	mu    sync.Mutex
	calls []drawj2dCall

	stdout      string
	stderr      string
	err         error
	writeOutput bool
}

func (f *fakeDrawj2d) Run(_ context.Context, name string, args []string, stdin string) (string, string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, drawj2dCall{name: name, args: args, stdin: stdin})
	f.mu.Unlock()

	if f.writeOutput {
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				if err := os.WriteFile(args[i+1], []byte("PK"), 0o600); err != nil {
					return "", "", err
				}
			}
		}
	}
	return f.stdout, f.stderr, f.err
}

func (f *fakeDrawj2d) lastCall(t *testing.T) drawj2dCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("drawj2d was not run")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeDrawj2d) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// lookPathWith returns a LookPath that knows only the given executables.
func lookPathWith(found map[string]string) func(string) (string, error) {
	return func(file string) (string, error) {
		if p, ok := found[file]; ok {
			return p, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment where drawj2d and java are on PATH
// and drawj2d is the given runner.
func newTestEnv(runner *fakeDrawj2d) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Stdout: &stdout,
			Stderr: &stderr,
			Runner: runner,
			LookPath: lookPathWith(map[string]string{
				"drawj2d": fakeDrawj2dPath,
				"java":    "/usr/bin/java",
			}),
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// clearEnv blanks every recognized variable and isolates the user config
// directory. Callers cannot use t.Parallel().
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("HOME", cfgHome)
	t.Setenv("AppData", cfgHome)
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// writePDF creates a placeholder PDF in dir.
func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	return writeFile(t, dir, name, "%PDF-1.4\n")
}
