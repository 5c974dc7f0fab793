// Package adjust holds the boundary rebalancing policies. Each policy is a
// pure function from a parsed region mapping and a byte delta to the subset
// of regions it changed; nothing here touches the filesystem.
package adjust

import (
	"fmt"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// Region names the policies operate on.
const (
	// ChipKernelRegion is the privileged bank at the bottom of flash.
	ChipKernelRegion = "rom"

	// ChipAppRegion is the application bank directly above the kernel.
	ChipAppRegion = "prog"

	// UserspaceRegion is the single application-facing region in a
	// userspace layout, assumed to mirror the chip-level split.
	UserspaceRegion = "FLASH"
)

// Apply runs the named policy and returns only the regions it changed. A
// positive delta grows the application side of the boundary.
func Apply(p types.Policy, regions map[string]types.Region, delta int64) (map[string]types.Region, error) {
	switch p {
	case types.PolicyChip:
		return Chip(regions, delta)
	case types.PolicyUserspace:
		return Userspace(regions, delta)
	default:
		return nil, fmt.Errorf("layout policy %v not implemented", p)
	}
}

// Chip rebalances the whole-chip kernel/app split: the kernel bank keeps its
// origin and shrinks by delta, while the app bank slides down by delta and
// grows by the same amount. The combined span is conserved and the app bank's
// end address never moves.
//
// Values are not bounds-checked. A delta larger than the kernel bank yields a
// negative length, which is encoded as-is for the caller to catch if it cares.
func Chip(regions map[string]types.Region, delta int64) (map[string]types.Region, error) {
	rom, ok := regions[ChipKernelRegion]
	if !ok {
		return nil, missing(ChipKernelRegion)
	}
	prog, ok := regions[ChipAppRegion]
	if !ok {
		return nil, missing(ChipAppRegion)
	}

	rom.Length = types.EncodeNumeral(rom.Length.Value - delta)
	prog.Origin = types.EncodeNumeral(prog.Origin.Value - delta)
	prog.Length = types.EncodeNumeral(prog.Length.Value + delta)

	return map[string]types.Region{
		ChipKernelRegion: rom,
		ChipAppRegion:    prog,
	}, nil
}

// Userspace slides the application-facing FLASH region down by delta and
// grows it by the same amount, keeping its end address fixed. Like Chip it
// performs no bounds checking.
func Userspace(regions map[string]types.Region, delta int64) (map[string]types.Region, error) {
	flash, ok := regions[UserspaceRegion]
	if !ok {
		return nil, missing(UserspaceRegion)
	}

	flash.Origin = types.EncodeNumeral(flash.Origin.Value - delta)
	flash.Length = types.EncodeNumeral(flash.Length.Value + delta)

	return map[string]types.Region{UserspaceRegion: flash}, nil
}

func missing(name string) error {
	return &types.Error{
		Kind: types.ErrKindMissingRegion,
		Msg:  fmt.Sprintf("region %s not declared in layout", name),
	}
}
