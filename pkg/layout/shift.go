package layout

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fwmaint/layoutkit/internal/adjust"
	"github.com/fwmaint/layoutkit/internal/script"
	"github.com/fwmaint/layoutkit/pkg/types"
)

// ShiftFile applies one policy to one layout file: parse the region
// declarations, run the policy over them, and rewrite the file with the
// adjusted subset. Only declarations the policy adjusted survive the
// rewrite; see the package documentation for the consequences.
//
// Example:
//
//	err := layout.ShiftFile("kernel/chip_layout_a.ld", types.PolicyChip, 0x1000, nil)
func ShiftFile(path string, policy types.Policy, delta int64, opts *ShiftOptions) error {
	if opts == nil {
		opts = &ShiftOptions{}
	}
	if !fileExists(path) {
		return &types.Error{
			Kind: types.ErrKindFileAccess,
			Msg:  fmt.Sprintf("layout file not found: %s", path),
			Err:  os.ErrNotExist,
		}
	}

	regions, err := ReadRegions(path)
	if err != nil {
		return err
	}
	updated, err := adjust.Apply(policy, regions, delta)
	if err != nil {
		return fmt.Errorf("adjust %s: %w", path, err)
	}

	Logger().Debug("rebalancing layout",
		zap.String("path", path),
		zap.Stringer("policy", policy),
		zap.Int64("delta", delta),
		zap.Int("declared", len(regions)),
		zap.Int("updated", len(updated)),
	)

	if opts.DryRun {
		return nil
	}
	if opts.CreateBackup {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
		}
	}
	return script.RewriteFile(path, updated)
}

// ShiftAll walks the targets in order and applies each one with ShiftFile.
//
// The first failure stops the run: files already rewritten stay rewritten,
// later targets are never opened. If OnProgress is set, it's called before
// each target is processed.
//
// Example:
//
//	err := layout.ShiftAll(layout.DefaultPlan("firmware"), 0x1000, &layout.ShiftOptions{
//	    OnProgress: func(current, total int, target layout.Target) {
//	        fmt.Printf("Updating %s (%d/%d)\n", target.Path, current, total)
//	    },
//	})
func ShiftAll(targets []Target, delta int64, opts *ShiftOptions) error {
	total := len(targets)
	for i, target := range targets {
		if opts != nil && opts.OnProgress != nil {
			opts.OnProgress(i+1, total, target)
		}
		if err := ShiftFile(target.Path, target.Policy, delta, opts); err != nil {
			return fmt.Errorf("failed to rebalance %s (file %d/%d): %w", target.Path, i+1, total, err)
		}
	}
	return nil
}
