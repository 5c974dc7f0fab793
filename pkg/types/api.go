package types

import (
	"fmt"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFileAccess     ErrKind = iota // target path missing, unreadable or unwritable
	ErrKindMissingRegion                 // a policy's required region absent from the mapping
	ErrKindMalformedDelta                // delta argument not parseable as decimal or hex
	ErrKindEncoding                      // layout file encoding cannot be decoded
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so errors
// constructed at call sites match the exported sentinels under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels returned (wrapped) by implementations. All are fatal: the run
// aborts on the first one, with files already rewritten left as they are.
var (
	// ErrFileAccess indicates a layout file could not be opened, read or
	// written back.
	ErrFileAccess = &Error{Kind: ErrKindFileAccess, Msg: "layout file inaccessible"}
	// ErrMissingRegion indicates a region a policy requires (rom, prog or
	// FLASH) was not present in the parsed mapping.
	ErrMissingRegion = &Error{Kind: ErrKindMissingRegion, Msg: "required region missing"}
	// ErrMalformedDelta indicates the delta argument parsed as neither a
	// decimal nor a 0x-prefixed hexadecimal integer.
	ErrMalformedDelta = &Error{Kind: ErrKindMalformedDelta, Msg: "malformed delta"}
	// ErrEncoding indicates the layout file carried an encoding the codec
	// cannot decode or reproduce.
	ErrEncoding = &Error{Kind: ErrKindEncoding, Msg: "unsupported layout encoding"}
)

// -----------------------------------------------------------------------------
// Numerals
// -----------------------------------------------------------------------------

// Numeral holds one ORIGIN or LENGTH field in both of its representations:
// the exact substring matched in the file (so values round-trip as written
// when the adjuster does not touch them) and the parsed integer used for
// arithmetic.
type Numeral struct {
	Text  string // literal as matched, e.g. "0x00040000" or "4096"
	Value int64
}

// ParseNumeral parses text with automatic base detection: a 0x/0X prefix
// selects base 16, anything else is read as decimal. The returned Numeral
// keeps text verbatim.
func ParseNumeral(text string) (Numeral, error) {
	var (
		v   int64
		err error
	)
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err = strconv.ParseInt(text[2:], 16, 64)
	} else {
		v, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		return Numeral{}, fmt.Errorf("numeral %q: %w", text, err)
	}
	return Numeral{Text: text, Value: v}, nil
}

// EncodeNumeral re-encodes an adjusted value in the canonical fixed-width
// form: 0x-prefixed, zero-padded to 8 hex digits. Negative values keep their
// sign in front of the prefix; nothing is clamped or rejected here.
func EncodeNumeral(value int64) Numeral {
	return Numeral{Text: fmt.Sprintf("%#010x", value), Value: value}
}

// String returns the literal text.
func (n Numeral) String() string { return n.Text }

// -----------------------------------------------------------------------------
// Regions
// -----------------------------------------------------------------------------

// Region describes one named, contiguous address range declared in a layout
// file. Perms is carried verbatim (parentheses included) and never
// interpreted; Origin and Length keep both views per Numeral.
type Region struct {
	Name   string
	Perms  string // e.g. "(rx)", exactly as matched
	Origin Numeral
	Length Numeral
}

// End returns the first address past the region (Origin + Length).
func (r Region) End() int64 { return r.Origin.Value + r.Length.Value }

// -----------------------------------------------------------------------------
// Policies
// -----------------------------------------------------------------------------

// Policy selects which boundary-adjustment rule applies to a layout file.
type Policy int

const (
	// PolicyChip rebalances the whole-chip kernel/app split: rom shrinks by
	// delta while prog slides down and grows by the same amount, conserving
	// the combined span.
	PolicyChip Policy = iota
	// PolicyUserspace grows the application-facing FLASH region to mirror a
	// chip-level shrink the tool does not itself track numerically.
	PolicyUserspace
)

// String implements the Stringer interface for Policy.
func (p Policy) String() string {
	switch p {
	case PolicyChip:
		return "chip"
	case PolicyUserspace:
		return "userspace"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps the CLI spelling of a policy to its identifier.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "chip":
		return PolicyChip, nil
	case "userspace", "user":
		return PolicyUserspace, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (must be chip or userspace)", s)
	}
}
