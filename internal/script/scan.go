package script

import (
	"strings"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// fieldSpan records where one keyword/numeral pair sits inside a line. Offsets
// are byte positions: start is the first byte of the keyword, end is one past
// the last numeral byte. substitutable is set when the text between keyword
// and numeral is a plain assignment, which is the only shape a rewrite will
// replace.
type fieldSpan struct {
	start, end    int
	substitutable bool
}

// Decl is one region declaration recognized on a single line of layout text.
// Beyond the parsed Region it keeps the positions of the two numeric fields
// so fresh values can be spliced back without disturbing surrounding text.
type Decl struct {
	Region types.Region
	origin fieldSpan
	length fieldSpan
}

// ScanLine recognizes a region declaration of the shape
//
//	<ws> <name> <ws> ( <perms> ) ... ORIGIN ... <numeral> ... LENGTH ... <numeral>
//
// where the leading whitespace is required, so text starting in column zero
// never declares a region. Keyword matching is ASCII case-insensitive and the
// first occurrence of each piece wins. Lines that do not follow the shape,
// including lines whose numerals fail to parse, report ok == false and are
// left alone by both reading and rewriting.
func ScanLine(line string) (Decl, bool) {
	head, ok := scanHead(line)
	if !ok {
		return Decl{}, false
	}
	origin, originNum, ok := scanField(line, head.end, TokenOrigin)
	if !ok {
		return Decl{}, false
	}
	length, lengthNum, ok := scanField(line, origin.end, TokenLength)
	if !ok {
		return Decl{}, false
	}
	return Decl{
		Region: types.Region{
			Name:   head.name,
			Perms:  head.perms,
			Origin: originNum,
			Length: lengthNum,
		},
		origin: origin,
		length: length,
	}, true
}

// Substitute returns line with the declaration's numeric fields replaced by
// the canonical spelling of the given region's values. A field whose
// surrounding text is not a plain assignment keeps its original bytes, as
// does everything outside the two field spans (indentation, the name and
// permission group, separators, comments, the line terminator).
func (d Decl) Substitute(line string, r types.Region) string {
	var b strings.Builder
	b.Grow(len(line) + 8)
	pos := 0
	if d.origin.substitutable {
		b.WriteString(line[pos:d.origin.start])
		b.WriteString(TokenOrigin)
		b.WriteString(AssignPadded)
		b.WriteString(r.Origin.Text)
		pos = d.origin.end
	}
	if d.length.substitutable {
		b.WriteString(line[pos:d.length.start])
		b.WriteString(TokenLength)
		b.WriteString(AssignPadded)
		b.WriteString(r.Length.Text)
		pos = d.length.end
	}
	b.WriteString(line[pos:])
	return b.String()
}

// head is the "<ws> name (perms)" prefix of a declaration.
type head struct {
	name  string
	perms string // parentheses included
	end   int    // one past the closing parenthesis
}

// scanHead finds the first whitespace-preceded "name (perms)" group on the
// line. When a candidate fails partway through, scanning resumes far enough
// back that a later group on the same line can still be found.
func scanHead(line string) (head, bool) {
	i := 0
	for i < len(line) {
		if !isSpaceByte(line[i]) {
			i++
			continue
		}
		j := i
		for j < len(line) && isSpaceByte(line[j]) {
			j++
		}
		nameStart := j
		nameEnd := j
		for nameEnd < len(line) && isWordByte(line[nameEnd]) {
			nameEnd++
		}
		if nameEnd == nameStart {
			i = j + 1
			continue
		}
		m := nameEnd
		for m < len(line) && isSpaceByte(line[m]) {
			m++
		}
		if m == nameEnd || m == len(line) || line[m] != PermOpen {
			// No permission group after this name. The run of spaces
			// before m may still open a later head, so resume where
			// the name ended.
			i = nameEnd
			continue
		}
		permStart := m + 1
		permEnd := permStart
		for permEnd < len(line) && isPermByte(line[permEnd]) {
			permEnd++
		}
		if permEnd == permStart || permEnd == len(line) || line[permEnd] != PermClose {
			i = permStart
			continue
		}
		return head{
			name:  line[nameStart:nameEnd],
			perms: line[m : permEnd+1],
			end:   permEnd + 1,
		}, true
	}
	return head{}, false
}

// scanField locates the first occurrence of keyword at or after from, then
// the first run of numeral bytes after it, and parses that run. The field is
// substitutable only when the bytes between keyword and numeral are optional
// whitespace around a single equals sign.
func scanField(line string, from int, keyword string) (fieldSpan, types.Numeral, bool) {
	kw := indexFold(line, keyword, from)
	if kw < 0 {
		return fieldSpan{}, types.Numeral{}, false
	}
	numStart := kw + len(keyword)
	for numStart < len(line) && !isNumeralByte(line[numStart]) {
		numStart++
	}
	if numStart == len(line) {
		return fieldSpan{}, types.Numeral{}, false
	}
	numEnd := numStart
	for numEnd < len(line) && isNumeralByte(line[numEnd]) {
		numEnd++
	}
	num, err := types.ParseNumeral(line[numStart:numEnd])
	if err != nil {
		return fieldSpan{}, types.Numeral{}, false
	}
	f := fieldSpan{
		start:         kw,
		end:           numEnd,
		substitutable: isAssignGap(line[kw+len(keyword) : numStart]),
	}
	return f, num, true
}

// isAssignGap reports whether s is whitespace around exactly one equals sign.
func isAssignGap(s string) bool {
	seen := false
	for k := 0; k < len(s); k++ {
		switch {
		case isSpaceByte(s[k]):
		case s[k] == Assign && !seen:
			seen = true
		default:
			return false
		}
	}
	return seen
}

// indexFold returns the index of the first ASCII case-insensitive occurrence
// of token in s at or after from, or -1. Tokens are pure ASCII, so the byte
// offset is safe to slice with.
func indexFold(s, token string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(token) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(token)], token) {
			return i
		}
	}
	return -1
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		'0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z'
}

func isPermByte(c byte) bool {
	return strings.IndexByte(PermBytes, c) >= 0
}

// isNumeralByte matches the characters a numeral may contain: hex digits in
// either case plus the base prefix letter. Validity of the run as a whole is
// decided by the parse, not here.
func isNumeralByte(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return c == 'x' || c == 'X'
}
