package process

// Notes:
// - KillProcessGroup: non-positive PIDs must be rejected; PID 0 would target
//   the test binary's own process group on unix.
// - The group kill itself is exercised by the converter runner's
//   cancellation test in the root package.

import (
	"os/exec"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{0, -1} {
		if err := KillProcessGroup(pid); err == nil {
			t.Errorf("KillProcessGroup(%d) = nil, want error", pid)
		}
	}
}

func TestKillProcessGroup_NonexistentPID(t *testing.T) {
	t.Parallel()

	// Must not panic; the error value is platform specific.
	_ = KillProcessGroup(999999999)
}

// ---------------------------------------------------------------------------
// TestIsolate - SysProcAttr setup
// ---------------------------------------------------------------------------

func TestIsolate(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("drawj2d")
	Isolate(cmd)
	if cmd.SysProcAttr == nil {
		t.Fatal("SysProcAttr is nil after Isolate")
	}

	// Calling twice keeps the existing attributes.
	attr := cmd.SysProcAttr
	Isolate(cmd)
	if cmd.SysProcAttr != attr {
		t.Error("Isolate replaced an existing SysProcAttr")
	}
}
