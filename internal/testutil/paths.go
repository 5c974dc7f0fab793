package testutil

// Sample firmware tree shipped with the repository, relative to the
// repository root. These constants should be used instead of hardcoding
// paths in test files.
const (
	// SampleFirmwareTree holds a complete four-file layout set with
	// realistic region values.
	SampleFirmwareTree = "testdata/firmware"
)
