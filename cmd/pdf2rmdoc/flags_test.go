package main

// Notes:
// - parseConvertFlags/parseDoctorFlags: we test short and long forms,
//   interleaved positionals, and that --resolution 0 counts as set.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Convert flag parsing
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantPos   []string
		check     func(t *testing.T, f *convertFlags)
		wantError bool
	}{
		{
			name:    "input only",
			args:    []string{"a.pdf"},
			wantPos: []string{"a.pdf"},
			check: func(t *testing.T, f *convertFlags) {
				if f.resolutionSet {
					t.Error("resolutionSet = true, want false")
				}
			},
		},
		{
			name:    "all long flags interleaved",
			args:    []string{"--output", "x.rmdoc", "a.pdf", "--resolution", "229", "--timeout", "1m", "--config", "tablet", "--drawj2d", "/bin/d", "--env-file", ".env", "--verbose"},
			wantPos: []string{"a.pdf"},
			check: func(t *testing.T, f *convertFlags) {
				if f.output != "x.rmdoc" || f.resolution != 229 || !f.resolutionSet || f.timeout != "1m" {
					t.Errorf("conversion flags = %+v", f)
				}
				if f.common.config != "tablet" || f.common.drawj2d != "/bin/d" || f.common.envFile != ".env" || !f.common.verbose {
					t.Errorf("common flags = %+v", f.common)
				}
			},
		},
		{
			name:    "short flags",
			args:    []string{"-o", "x.rmdoc", "-t", "30s", "-c", "cfg", "-q", "a.pdf"},
			wantPos: []string{"a.pdf"},
			check: func(t *testing.T, f *convertFlags) {
				if f.output != "x.rmdoc" || f.timeout != "30s" || f.common.config != "cfg" || !f.common.quiet {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name:    "resolution zero is set",
			args:    []string{"a.pdf", "--resolution=0"},
			wantPos: []string{"a.pdf"},
			check: func(t *testing.T, f *convertFlags) {
				if !f.resolutionSet || f.resolution != 0 {
					t.Errorf("resolution = %d set=%v, want 0 set=true", f.resolution, f.resolutionSet)
				}
			},
		},
		{
			name:    "help",
			args:    []string{"-h"},
			wantPos: []string{},
			check: func(t *testing.T, f *convertFlags) {
				if !f.help {
					t.Error("help = false")
				}
			},
		},
		{name: "non-integer resolution", args: []string{"a.pdf", "--resolution", "high"}, wantError: true},
		{name: "unknown flag", args: []string{"a.pdf", "--color"}, wantError: true},
		{name: "missing value", args: []string{"a.pdf", "-o"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, pos, err := parseConvertFlags(tt.args)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(pos, tt.wantPos) {
				t.Errorf("positional = %q, want %q", pos, tt.wantPos)
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseDoctorFlags - Doctor flag parsing
// ---------------------------------------------------------------------------

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "--drawj2d", "/bin/d", "-v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.json || f.common.drawj2d != "/bin/d" || !f.common.verbose {
		t.Errorf("flags = %+v", f)
	}

	if _, err := parseDoctorFlags([]string{"--output", "x"}); err == nil {
		t.Error("doctor should reject --output")
	}
}
