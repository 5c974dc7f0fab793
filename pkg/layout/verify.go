package layout

import "github.com/fwmaint/layoutkit/internal/adjust"

// Problem describes one target a rebalance would fail on.
type Problem struct {
	Target Target
	Err    error
}

// VerifyTargets checks every target without writing anything: the layout
// must be readable and must declare the regions its policy adjusts. Unlike
// ShiftAll, all targets are examined even after a failure, so one run
// reports everything a rebalance would trip over one file at a time.
func VerifyTargets(targets []Target) []Problem {
	var problems []Problem
	for _, target := range targets {
		regions, err := ReadRegions(target.Path)
		if err != nil {
			problems = append(problems, Problem{Target: target, Err: err})
			continue
		}
		// A zero-delta adjustment exercises the policy's region lookups
		// without changing any values.
		if _, err := adjust.Apply(target.Policy, regions, 0); err != nil {
			problems = append(problems, Problem{Target: target, Err: err})
		}
	}
	return problems
}
