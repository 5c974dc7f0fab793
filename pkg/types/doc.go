// Package types defines the vocabulary shared by the layoutkit packages:
// the Region descriptor parsed out of linker-layout description files, the
// dual text/integer Numeral representation used for round-trip fidelity,
// the boundary-adjustment Policy identifiers, and typed errors with stable
// categories (file access / missing region / malformed delta / encoding).
//
// This package has no dependencies beyond the standard library.
package types
