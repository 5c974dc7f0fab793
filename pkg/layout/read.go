package layout

import (
	"sort"

	"github.com/fwmaint/layoutkit/internal/script"
	"github.com/fwmaint/layoutkit/pkg/types"
)

// ReadRegions parses a layout file without modifying it and returns the
// regions it declares, keyed by name. Duplicate names resolve to the last
// declaration in the file.
func ReadRegions(path string) (map[string]types.Region, error) {
	return script.ReadFile(path)
}

// SortRegions flattens a region mapping into a slice ordered by origin,
// with ties broken by name, for stable display.
func SortRegions(regions map[string]types.Region) []types.Region {
	out := make([]types.Region, 0, len(regions))
	for _, r := range regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Origin.Value != out[j].Origin.Value {
			return out[i].Origin.Value < out[j].Origin.Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}
