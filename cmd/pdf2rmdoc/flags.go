package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	drawj2d string
	envFile string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common        commonFlags
	output        string
	resolution    int
	resolutionSet bool // --resolution was given (0 is a value, not "unset")
	timeout       string
	help          bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
	help   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.drawj2d, "drawj2d", "", "path to the drawj2d executable")
	fs.StringVar(&f.envFile, "env-file", "", "load environment variables from a .env file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show converter details and timing")
}

// newFlagSet creates a FlagSet that reports errors to the caller instead
// of exiting, and writes nothing on its own.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := newFlagSet("convert")
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .rmdoc path (default: <input>.rmdoc)")
	fs.IntVar(&f.resolution, "resolution", 0, "scaling resolution forwarded as drawj2d -r<n> (229 for Paper Pro)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "converter timeout (e.g., 30s, 2m; 0 = none)")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.resolutionSet = fs.Changed("resolution")

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	fs := newFlagSet("doctor")
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "output results as JSON")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
