//go:build darwin

package script

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes rewritten layout content to disk.
//
// macOS has no fdatasync, so use regular fsync.
func syncFile(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
