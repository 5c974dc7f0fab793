// Package script reads and rewrites the MEMORY-region declarations of linker
// layout files as plain text, touching nothing but the declaration lines it
// recognizes.
package script

const (
	// ============================================================================
	// Layout Script Tokens
	// ============================================================================

	// TokenOrigin introduces a region's base-address field
	TokenOrigin = "ORIGIN"

	// TokenLength introduces a region's size field
	TokenLength = "LENGTH"

	// Assign separates a field keyword from its numeral
	Assign = '='

	// AssignPadded is the canonical keyword/numeral separator written back
	// for rewritten fields
	AssignPadded = " = "

	// PermOpen marks the start of a region's permission group
	PermOpen = '('

	// PermClose marks the end of a region's permission group
	PermClose = ')'

	// PermBytes are the letters allowed inside a permission group
	PermBytes = "rwxRWX"

	// ============================================================================
	// Byte Order Marks
	// ============================================================================

	// BOMUTF8 is the UTF-8 byte order mark (EF BB BF)
	BOMUTF8 = "\xef\xbb\xbf"

	// BOMUTF16LE is the little-endian UTF-16 byte order mark (FF FE)
	BOMUTF16LE = "\xff\xfe"

	// BOMUTF16BE is the big-endian UTF-16 byte order mark (FE FF)
	BOMUTF16BE = "\xfe\xff"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF is the Unix line ending
	LF = "\n"

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"
)
