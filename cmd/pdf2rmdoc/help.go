package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2rmdoc <input.pdf> [flags]")
	fmt.Fprintln(w, "       pdf2rmdoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a PDF to a reMarkable .rmdoc using Drawj2d")
	fmt.Fprintln(w, "(color-aware on Paper Pro when supported by the source PDF).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a PDF to .rmdoc (default)")
	fmt.Fprintln(w, "  doctor     Check the drawj2d installation")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdf2rmdoc help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2rmdoc [convert] <input.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a PDF to a reMarkable .rmdoc. Prints the output path on success.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.pdf    Path to input PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .rmdoc path (default: <input>.rmdoc)")
	fmt.Fprintln(w, "      --resolution <n>      Scaling resolution (drawj2d -r<n>); 229 for Paper Pro")
	fmt.Fprintln(w, "  -t, --timeout <d>         Converter timeout, e.g. 30s, 2m (default: none)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	printEnvUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2rmdoc doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that drawj2d can be found and runs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Output results as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCommonUsage prints flags shared by convert and doctor.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Setup:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --drawj2d <path>      drawj2d executable (must exist)")
	fmt.Fprintln(w, "      --env-file <path>     Load variables from a .env file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show converter details and timing")
}

// printEnvUsage lists recognized environment variables.
func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-28s drawj2d path, used if it exists (else PATH)\n", envDrawj2d)
	fmt.Fprintf(w, "  %-28s config name or path\n", envConfigFile)
	fmt.Fprintf(w, "  %-28s default resolution\n", envResolution)
	fmt.Fprintf(w, "  %-28s default output directory\n", envOutputDir)
	fmt.Fprintf(w, "  %-28s default timeout\n", envTimeout)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdDoctor:
		printDoctorUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: pdf2rmdoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: pdf2rmdoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
