package main

import (
	"io"
	"os"
	"os/exec"

	pdf2rmdoc "github.com/alnah/go-pdf2rmdoc"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Runner   pdf2rmdoc.CommandRunner
	LookPath func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   &pdf2rmdoc.ExecRunner{},
		LookPath: exec.LookPath,
	}
}
