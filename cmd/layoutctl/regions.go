package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwmaint/layoutkit/pkg/layout"
)

func init() {
	rootCmd.AddCommand(newRegionsCmd())
}

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions <layout-file>",
		Short: "List the regions declared in a layout file",
		Long: `The regions command parses a layout file and prints every region
declaration it recognizes, ordered by origin. The file is not modified.

Example:
  layoutctl regions kernel/chip_layout_a.ld
  layoutctl regions userspace/layout_a.ld --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(args)
		},
	}
	return cmd
}

func runRegions(args []string) error {
	if err := checkArgs(args, 1, "layoutctl regions <layout-file>"); err != nil {
		return err
	}
	path := args[0]

	printVerbose("Reading layout: %s\n", path)

	regions, err := layout.ReadRegions(path)
	if err != nil {
		return fmt.Errorf("failed to read regions: %w", err)
	}
	sorted := layout.SortRegions(regions)

	// Output as JSON if requested
	if jsonOut {
		type regionJSON struct {
			Name   string `json:"name"`
			Perms  string `json:"perms"`
			Origin string `json:"origin"`
			Length string `json:"length"`
			End    string `json:"end"`
		}
		out := make([]regionJSON, 0, len(sorted))
		for _, r := range sorted {
			out = append(out, regionJSON{
				Name:   r.Name,
				Perms:  r.Perms,
				Origin: r.Origin.Text,
				Length: r.Length.Text,
				End:    fmt.Sprintf("%#x", r.End()),
			})
		}
		return printJSON(map[string]interface{}{
			"file":    path,
			"regions": out,
		})
	}

	// Text output
	printInfo("Regions in %s:\n", path)
	for _, r := range sorted {
		printInfo("  %-8s %-6s ORIGIN = %-12s LENGTH = %-12s end = %#x\n",
			r.Name, r.Perms, r.Origin.Text, r.Length.Text, r.End())
	}
	printInfo("\n%d region(s)\n", len(sorted))
	return nil
}
