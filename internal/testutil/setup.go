// Package testutil builds throwaway firmware trees for tests that exercise
// the full read/adjust/rewrite path against real files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Canonical layout fixtures. The chip layouts carry a ram declaration on
// purpose: the rewrite step drops declarations the policy does not adjust,
// and tests must see that happen.
const (
	// ChipLayoutText is a whole-chip layout with the kernel bank at the
	// bottom of flash and the application bank directly above it.
	ChipLayoutText = `/* Whole-chip memory map. */
MEMORY
{
  rom (rx) : ORIGIN = 0x00000000, LENGTH = 0x00040000
  prog (rwx) : ORIGIN = 0x00040000, LENGTH = 0x00010000
  ram (rwx) : ORIGIN = 0x20000000, LENGTH = 0x00010000
}
`

	// UserspaceLayoutText is an application-facing layout whose FLASH
	// region mirrors the chip-level application bank.
	UserspaceLayoutText = `/* Application memory map. */
MEMORY
{
  FLASH (rx) : ORIGIN = 0x00040000, LENGTH = 0x00010000
  RAM (rwx) : ORIGIN = 0x20004000, LENGTH = 0x0000c000
}
`
)

// WriteTree creates a temporary firmware tree holding all four layout files
// at their conventional locations and returns its root. The tree is removed
// when the test finishes.
//
// Example:
//
//	root := testutil.WriteTree(t)
//	err := layout.ShiftAll(layout.DefaultPlan(root), 0x1000, nil)
func WriteTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFile(t, filepath.Join(root, "kernel", "chip_layout_a.ld"), ChipLayoutText)
	WriteFile(t, filepath.Join(root, "kernel", "chip_layout_b.ld"), ChipLayoutText)
	WriteFile(t, filepath.Join(root, "userspace", "layout_a.ld"), UserspaceLayoutText)
	WriteFile(t, filepath.Join(root, "userspace", "layout_b.ld"), UserspaceLayoutText)
	return root
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile reads path back, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// SampleTree copies the repository's sample firmware tree into a temporary
// directory and returns its root, so tests can rewrite the layouts without
// touching the checked-in fixture. Calls t.Skip if the fixture is not found.
//
// Example:
//
//	root := testutil.SampleTree(t)
//	problems := layout.VerifyTargets(layout.DefaultPlan(root))
func SampleTree(t *testing.T) string {
	t.Helper()
	src := resolveTestPath(t, SampleFirmwareTree)
	root := t.TempDir()
	if err := os.CopyFS(root, os.DirFS(src)); err != nil {
		t.Fatalf("copy sample tree from %s: %v", src, err)
	}
	return root
}

// resolveTestPath finds a repository fixture by trying multiple path
// resolutions. This handles the fact that tests may be run from different
// working directories.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,                                  // from the repository root
		filepath.Join("..", relativePath),             // from a top-level package
		filepath.Join("..", "..", relativePath),       // from a package two levels deep
		filepath.Join("..", "..", "..", relativePath), // from a package three levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Sample tree not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}
