package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwmaint/layoutkit/internal/testutil"
	"github.com/fwmaint/layoutkit/pkg/layout"
)

func resetShiftFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	shiftDelta = ""
	shiftRoot = ""
	shiftBackup = false
	shiftDryRun = false
}

func TestShiftCommand(t *testing.T) {
	tests := []struct {
		name           string
		delta          string
		dryRun         bool
		quietMode      bool
		verboseMode    bool
		wantErr        bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:  "positive hex delta",
			delta: "0x1000",
			wantContain: []string{
				"Delta: 0X1000 bytes",
				"Updating",
				"chip_layout_a.ld",
				"chip_layout_b.ld",
				"layout_a.ld",
				"layout_b.ld",
				"✓ Boundary shifted by 0x1000 bytes across 4 files",
			},
		},
		{
			name:  "negative hex delta",
			delta: "-0x800",
			wantContain: []string{
				"Delta: -0X800 bytes",
				"✓ Boundary shifted by -0x800 bytes across 4 files",
			},
		},
		{
			name:  "decimal delta",
			delta: "4096",
			wantContain: []string{
				"Delta: 0X1000 bytes",
			},
		},
		{
			name:        "verbose shows policies",
			delta:       "0x1000",
			verboseMode: true,
			wantContain: []string{
				"policy: chip (1/4)",
				"policy: chip (2/4)",
				"policy: userspace (3/4)",
				"policy: userspace (4/4)",
			},
		},
		{
			name:   "dry run writes nothing",
			delta:  "0x1000",
			dryRun: true,
			wantContain: []string{
				"✓ Dry run complete, no files written",
			},
			wantNotContain: []string{"Boundary shifted"},
		},
		{
			name:      "quiet suppresses output",
			delta:     "0x1000",
			quietMode: true,
			wantNotContain: []string{
				"Delta", "Updating", "✓",
			},
		},
		{
			name:     "json output",
			delta:    "0x1000",
			wantJSON: true,
			wantContain: []string{
				`"delta": "0x1000"`,
				`"success": true`,
			},
			wantNotContain: []string{"Updating"},
		},
		{
			name:    "malformed delta",
			delta:   "0X1000",
			wantErr: true,
		},
		{
			name:    "empty delta",
			delta:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetShiftFlags()
			quiet = tt.quietMode
			verbose = tt.verboseMode
			jsonOut = tt.wantJSON
			shiftDelta = tt.delta
			shiftRoot = testutil.WriteTree(t)
			shiftDryRun = tt.dryRun

			output, err := captureOutput(t, runShift)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got output: %s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("runShift failed: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)

			// The files on disk must agree with the mode.
			chipA := testutil.ReadFile(t, filepath.Join(shiftRoot, layout.ChipLayoutA))
			if tt.dryRun {
				if chipA != testutil.ChipLayoutText {
					t.Errorf("dry run modified the layout:\n%s", chipA)
				}
			} else if !strings.Contains(chipA, "LENGTH = 0x0003f000") &&
				!strings.Contains(chipA, "LENGTH = 0x00040800") {
				t.Errorf("layout not rewritten:\n%s", chipA)
			}
		})
	}
}

func TestShiftCommand_UpdateOrder(t *testing.T) {
	resetShiftFlags()
	shiftDelta = "0x1000"
	shiftRoot = testutil.WriteTree(t)

	output, err := captureOutput(t, runShift)
	if err != nil {
		t.Fatalf("runShift failed: %v", err)
	}

	// Chip layouts must be reported before userspace layouts.
	idxChipB := strings.Index(output, "chip_layout_b.ld")
	idxUserA := strings.Index(output, filepath.Join("userspace", "layout_a.ld"))
	if idxChipB < 0 || idxUserA < 0 || idxChipB > idxUserA {
		t.Errorf("unexpected update order:\n%s", output)
	}
}

func TestShiftCommand_BackupFlag(t *testing.T) {
	resetShiftFlags()
	shiftDelta = "0x1000"
	shiftRoot = testutil.WriteTree(t)
	shiftBackup = true

	output, err := captureOutput(t, runShift)
	if err != nil {
		t.Fatalf("runShift failed: %v", err)
	}
	assertContains(t, output, []string{"Backups created"})

	backup := testutil.ReadFile(t, filepath.Join(shiftRoot, layout.ChipLayoutA)+".bak")
	if backup != testutil.ChipLayoutText {
		t.Errorf("backup does not hold the original bytes:\n%s", backup)
	}
}

func TestShiftCommand_MissingRegionAborts(t *testing.T) {
	resetShiftFlags()
	shiftDelta = "0x1000"
	shiftRoot = testutil.WriteTree(t)

	broken := strings.Replace(testutil.ChipLayoutText,
		"  prog (rwx) : ORIGIN = 0x00040000, LENGTH = 0x00010000\n", "", 1)
	testutil.WriteFile(t, filepath.Join(shiftRoot, layout.ChipLayoutB), broken)

	_, err := captureOutput(t, runShift)
	if err == nil {
		t.Fatal("expected an error for the broken chip layout")
	}
	if !strings.Contains(err.Error(), "chip_layout_b.ld") {
		t.Errorf("error does not name the failing file: %v", err)
	}

	// Userspace layouts were never reached.
	userA := testutil.ReadFile(t, filepath.Join(shiftRoot, layout.UserspaceLayoutA))
	if userA != testutil.UserspaceLayoutText {
		t.Errorf("userspace layout modified despite abort:\n%s", userA)
	}
}
