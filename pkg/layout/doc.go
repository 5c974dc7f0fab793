/*
Package layout rebalances the kernel/application boundary recorded in a
firmware tree's linker layout files.

# Quick Start

Shift the boundary of a whole tree by 4 KiB in favor of the application:

	err := layout.ShiftAll(layout.DefaultPlan("firmware"), 0x1000, nil)

# How a shift works

Each layout file is processed in three steps:

 1. Read: the file's MEMORY region declarations are parsed into a
    name-to-region mapping. Everything else in the file is ignored.
 2. Adjust: a pure policy recomputes the regions on either side of the
    boundary. The chip policy shrinks rom by delta and grows prog by the
    same amount; the userspace policy slides FLASH to match. The combined
    span is conserved and nothing is bounds-checked.
 3. Rewrite: the file is re-read and written back in place. Only the
    ORIGIN and LENGTH numerals of adjusted declarations change, re-encoded
    as fixed-width hex; all other text is preserved byte for byte.

A declaration line whose region the policy did not adjust does not survive
the rewrite. Layout files routinely declare regions such as ram alongside
the flash banks, so keep anything a policy does not manage in an included
file rather than next to the managed declarations.

# Progress and safety

Rebalance with progress reporting and backups:

	opts := &layout.ShiftOptions{
	    OnProgress: func(current, total int, target layout.Target) {
	        fmt.Printf("Updating %s\n", target.Path)
	    },
	    CreateBackup: true,
	}
	err := layout.ShiftAll(layout.DefaultPlan("firmware"), 0x1000, opts)

Check a tree without writing:

	problems := layout.VerifyTargets(layout.DefaultPlan("firmware"))
	for _, p := range problems {
	    log.Printf("%s: %v", p.Target.Path, p.Err)
	}

# Error Handling

The first error aborts a ShiftAll: files already rewritten stay rewritten
and later targets are untouched. Errors carry types.ErrKind categories, so
callers can branch with errors.Is against the sentinels in pkg/types.
*/
package layout
