package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwmaint/layoutkit/pkg/layout"
)

var (
	shiftDelta  string
	shiftRoot   string
	shiftBackup bool
	shiftDryRun bool
)

func init() {
	cmd := newShiftCmd()
	cmd.Flags().
		StringVarP(&shiftDelta, "delta", "d", "", "Signed boundary shift in bytes, decimal or 0x hex (required)")
	cmd.Flags().StringVar(&shiftRoot, "root", "", "Firmware tree root containing kernel/ and userspace/")
	cmd.Flags().BoolVar(&shiftBackup, "backup", false, "Create a .bak copy of each file before rewriting")
	cmd.Flags().BoolVar(&shiftDryRun, "dry-run", false, "Adjust everything but write nothing back")
	_ = cmd.MarkFlagRequired("delta")
	rootCmd.AddCommand(cmd)
}

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift --delta <bytes>",
		Short: "Shift the kernel/app boundary across all layout files",
		Long: `The shift command moves the kernel/application boundary by the given
number of bytes in all four layout files: both chip-level layouts, then both
userspace layouts. A positive delta enlarges the application region and
shrinks the kernel region by the same amount; a negative delta does the
reverse. The first failure aborts the run and leaves later files untouched.

Example:
  layoutctl shift --delta 0x1000
  layoutctl shift --delta -0x800 --root firmware
  layoutctl shift --delta 4096 --backup
  layoutctl shift --delta 0x1000 --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift()
		},
	}
	return cmd
}

func runShift() error {
	configureLogging()

	delta, err := layout.ParseDelta(shiftDelta)
	if err != nil {
		return fmt.Errorf("failed to parse delta: %w", err)
	}

	plan := layout.DefaultPlan(shiftRoot)
	opts := &layout.ShiftOptions{
		CreateBackup: shiftBackup,
		DryRun:       shiftDryRun,
	}
	if !jsonOut {
		printInfo("Delta: %#X bytes\n", delta)
		opts.OnProgress = func(current, total int, target layout.Target) {
			printInfo("Updating %s\n", target.Path)
			printVerbose("  policy: %s (%d/%d)\n", target.Policy, current, total)
		}
	}

	if err := layout.ShiftAll(plan, delta, opts); err != nil {
		return fmt.Errorf("failed to shift boundary: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		files := make([]string, 0, len(plan))
		for _, target := range plan {
			files = append(files, target.Path)
		}
		result := map[string]interface{}{
			"delta":   fmt.Sprintf("%#x", delta),
			"files":   files,
			"dry_run": shiftDryRun,
			"success": true,
		}
		return printJSON(result)
	}

	if shiftDryRun {
		printInfo("\n✓ Dry run complete, no files written\n")
		return nil
	}
	printInfo("\n✓ Boundary shifted by %#x bytes across %d files\n", delta, len(plan))
	if shiftBackup {
		printInfo("Backups created next to each layout file\n")
	}
	return nil
}
