package script

import (
	"fmt"
	"os"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// ReadFile parses one layout script and returns the regions it declares,
// keyed by name. When a name is declared more than once the last declaration
// wins. Lines that declare no region are skipped.
func ReadFile(path string) (map[string]types.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindFileAccess,
			Msg:  fmt.Sprintf("read layout %s", path),
			Err:  err,
		}
	}
	text, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", path, err)
	}
	return ParseRegions(text), nil
}

// ParseRegions scans layout text line by line and collects every region
// declaration found.
func ParseRegions(text string) map[string]types.Region {
	regions := make(map[string]types.Region)
	for _, line := range splitLines(text) {
		if d, ok := ScanLine(line); ok {
			regions[d.Region.Name] = d.Region
		}
	}
	return regions
}

// splitLines slices text into lines, each keeping its terminator. A final
// fragment without a terminator is returned as a line of its own.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
