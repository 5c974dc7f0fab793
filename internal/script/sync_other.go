//go:build !linux && !freebsd && !darwin

package script

import "os"

// syncFile flushes rewritten layout content through the portable Sync call.
func syncFile(f *os.File) error {
	return f.Sync()
}
