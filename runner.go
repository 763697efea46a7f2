package pdf2rmdoc

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/alnah/go-pdf2rmdoc/internal/process"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	// Run executes name with args, writing stdin to the process and returning
	// its captured output. A non-zero exit is reported as a non-nil error.
	Run(ctx context.Context, name string, args []string, stdin string) (stdout, stderr string, err error)
}

// waitDelay bounds how long Run waits for output pipes after the process
// has been killed.
const waitDelay = 5 * time.Second

// ExecRunner implements CommandRunner using os/exec.
// The child runs in its own process group; cancelling ctx kills the group.
type ExecRunner struct{}

// Compile-time interface implementation check.
var _ CommandRunner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, name string, args []string, stdin string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	process.Isolate(cmd)
	cmd.Cancel = func() error {
		return process.KillProcessGroup(cmd.Process.Pid)
	}
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
