package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// RewriteFile reads the layout at path again, substitutes the given region
// values into the lines declaring them, and writes the result back in place,
// truncating the original file. The fresh read keeps the rewrite grounded in
// current on-disk content rather than in whatever an earlier pass saw.
//
// A declaration line whose region name is absent from regions is dropped from
// the output entirely. Callers that want a region to survive on disk must
// pass it through even when its values did not change.
func RewriteFile(path string, regions map[string]types.Region) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &types.Error{
			Kind: types.ErrKindFileAccess,
			Msg:  fmt.Sprintf("read layout %s", path),
			Err:  err,
		}
	}
	text, flavor, err := Decode(data)
	if err != nil {
		return fmt.Errorf("decode layout %s: %w", path, err)
	}
	out, err := Encode(RewriteText(text, regions), flavor)
	if err != nil {
		return fmt.Errorf("encode layout %s: %w", path, err)
	}
	if err := writeFileSync(path, out); err != nil {
		return &types.Error{
			Kind: types.ErrKindFileAccess,
			Msg:  fmt.Sprintf("write layout %s", path),
			Err:  err,
		}
	}
	return nil
}

// RewriteText applies the substitution to layout text held in memory. Lines
// that declare no region pass through byte for byte, declaration lines named
// in regions are rewritten in place, and any remaining declaration lines are
// dropped along with their terminators.
func RewriteText(text string, regions map[string]types.Region) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range splitLines(text) {
		d, ok := ScanLine(line)
		if !ok {
			b.WriteString(line)
			continue
		}
		r, ok := regions[d.Region.Name]
		if !ok {
			continue
		}
		b.WriteString(d.Substitute(line, r))
	}
	return b.String()
}

// writeFileSync truncates path in place and flushes the new content to
// stable storage before closing.
func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := syncFile(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
