package layout

// ShiftOptions controls rebalance behavior.
type ShiftOptions struct {
	// OnProgress is called before each target is processed, with the
	// 1-based position, the total target count and the target itself.
	OnProgress func(current, total int, target Target)

	// CreateBackup copies each layout to <path>.bak before rewriting it.
	// No backup is taken for targets that fail before the rewrite.
	CreateBackup bool

	// DryRun reads and adjusts every target but writes nothing back.
	// Errors surface exactly as they would in a real run.
	DryRun bool
}
