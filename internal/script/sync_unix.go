//go:build linux || freebsd

package script

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes rewritten layout content to disk.
//
// A rewrite changes file content and size only, which fdatasync() covers
// on Linux/FreeBSD.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
