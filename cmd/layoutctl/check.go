package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwmaint/layoutkit/pkg/layout"
)

var checkRoot string

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkRoot, "root", "", "Firmware tree root containing kernel/ and userspace/")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that a shift would apply cleanly",
		Long: `The check command inspects all four layout files without writing
anything: each file must be readable and must declare the regions its policy
adjusts. Unlike shift, every file is examined even after a failure, so one
run reports every problem in the tree.

Example:
  layoutctl check
  layoutctl check --root firmware`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
	return cmd
}

func runCheck() error {
	configureLogging()

	plan := layout.DefaultPlan(checkRoot)
	problems := layout.VerifyTargets(plan)

	// Output as JSON if requested
	if jsonOut {
		type problemJSON struct {
			File   string `json:"file"`
			Policy string `json:"policy"`
			Error  string `json:"error"`
		}
		out := make([]problemJSON, 0, len(problems))
		for _, p := range problems {
			out = append(out, problemJSON{
				File:   p.Target.Path,
				Policy: p.Target.Policy.String(),
				Error:  p.Err.Error(),
			})
		}
		if err := printJSON(map[string]interface{}{
			"checked":  len(plan),
			"problems": out,
			"ok":       len(problems) == 0,
		}); err != nil {
			return err
		}
	} else {
		printInfo("Checked %d layout files\n", len(plan))
		for _, p := range problems {
			printError("%s: %v\n", p.Target.Path, p.Err)
		}
		if len(problems) == 0 {
			printInfo("✓ All layout files are ready to shift\n")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d of %d layout files failed the check", len(problems), len(plan))
	}
	return nil
}
