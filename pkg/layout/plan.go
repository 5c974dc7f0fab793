package layout

import (
	"path/filepath"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// Target pairs one layout file with the policy that rebalances it.
type Target struct {
	Policy types.Policy
	Path   string
}

// Layout file locations relative to the firmware tree root, one per
// hardware variant.
const (
	// ChipLayoutA is the whole-chip layout for the A variant.
	ChipLayoutA = "kernel/chip_layout_a.ld"

	// ChipLayoutB is the whole-chip layout for the B variant.
	ChipLayoutB = "kernel/chip_layout_b.ld"

	// UserspaceLayoutA is the application-facing layout for the A variant.
	UserspaceLayoutA = "userspace/layout_a.ld"

	// UserspaceLayoutB is the application-facing layout for the B variant.
	UserspaceLayoutB = "userspace/layout_b.ld"
)

// DefaultPlan returns the targets a full rebalance walks, in order: both
// chip-level layouts, then both userspace layouts. Keeping the chip files
// first means a malformed chip layout aborts the run before any userspace
// file is touched. root is the firmware tree root; an empty root means the
// current directory.
func DefaultPlan(root string) []Target {
	return []Target{
		{Policy: types.PolicyChip, Path: filepath.Join(root, ChipLayoutA)},
		{Policy: types.PolicyChip, Path: filepath.Join(root, ChipLayoutB)},
		{Policy: types.PolicyUserspace, Path: filepath.Join(root, UserspaceLayoutA)},
		{Policy: types.PolicyUserspace, Path: filepath.Join(root, UserspaceLayoutB)},
	}
}
