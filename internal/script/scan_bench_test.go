package script

import (
	"strconv"
	"strings"
	"testing"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// Benchmark scanning and rewriting a layout of realistic size
func BenchmarkScanLine(b *testing.B) {
	line := "  prog (rwx) : ORIGIN = 0x00040000, LENGTH = 0x00010000"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := ScanLine(line); !ok {
			b.Fatal("line did not scan")
		}
	}
}

func BenchmarkParseRegions(b *testing.B) {
	text := benchmarkLayout(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		regions := ParseRegions(text)
		if len(regions) != 64 {
			b.Fatalf("parsed %d regions", len(regions))
		}
	}
}

func BenchmarkRewriteText(b *testing.B) {
	text := benchmarkLayout(64)
	regions := ParseRegions(text)
	for name, r := range regions {
		r.Length = types.EncodeNumeral(r.Length.Value + 0x1000)
		regions[name] = r
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := RewriteText(text, regions)
		if len(out) == 0 {
			b.Fatal("empty rewrite")
		}
	}
}

// benchmarkLayout builds a MEMORY block with n declarations plus the
// surrounding brace and comment lines a real layout carries.
func benchmarkLayout(n int) string {
	var sb strings.Builder
	sb.WriteString("/* generated for benchmarking */\n")
	sb.WriteString("MEMORY\n{\n")
	for i := 0; i < n; i++ {
		sb.WriteString("  bank")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" (rwx) : ORIGIN = ")
		sb.WriteString(types.EncodeNumeral(int64(i) * 0x10000).Text)
		sb.WriteString(", LENGTH = 0x00010000\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
