package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that is neither a
// command nor something that could be an input path.
var ErrUnknownCommand = errors.New("unknown command")

// Command names.
const (
	cmdConvert = "convert"
	cmdDoctor  = "doctor"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is not a command name is treated as convert input.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var rest []string
	switch args[1] {
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "pdf2rmdoc %s\n", Version)
		return ExitSuccess
	case cmdHelp, "-h", "--help":
		return runHelp(args[2:], env)
	case cmdDoctor:
		return runDoctorCmd(args[2:], env)
	case cmdConvert:
		rest = args[2:]
	default:
		if isCommandLike(args[1]) {
			err := fmt.Errorf("%w: %s", ErrUnknownCommand, args[1])
			fmt.Fprintln(env.Stderr, "error:", err)
			printUsage(env.Stderr)
			return exitCodeFor(err)
		}
		rest = args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, rest, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommandLike reports whether arg looks like a mistyped command rather
// than an input path or a flag: a bare word with no extension or separator
// that does not exist on disk.
func isCommandLike(arg string) bool {
	if arg == "" || arg[0] == '-' {
		return false
	}
	for _, r := range arg {
		if r == '.' || r == '/' || r == '\\' || r == '~' {
			return false
		}
	}
	_, err := os.Stat(arg)
	return err != nil
}
