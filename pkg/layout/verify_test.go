package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fwmaint/layoutkit/internal/testutil"
	"github.com/fwmaint/layoutkit/pkg/types"
)

func TestVerifyTargets_CleanTree(t *testing.T) {
	root := testutil.WriteTree(t)
	require.Empty(t, VerifyTargets(DefaultPlan(root)))
}

func TestVerifyTargets_SampleTree(t *testing.T) {
	root := testutil.SampleTree(t)
	require.Empty(t, VerifyTargets(DefaultPlan(root)))
}

func TestVerifyTargets_CollectsEveryProblem(t *testing.T) {
	root := testutil.WriteTree(t)

	// Chip B loses its prog declaration, userspace A disappears entirely.
	broken := strings.Replace(testutil.ChipLayoutText,
		"  prog (rwx) : ORIGIN = 0x00040000, LENGTH = 0x00010000\n", "", 1)
	testutil.WriteFile(t, filepath.Join(root, ChipLayoutB), broken)
	require.NoError(t, os.Remove(filepath.Join(root, UserspaceLayoutA)))

	problems := VerifyTargets(DefaultPlan(root))
	require.Len(t, problems, 2)

	require.Equal(t, filepath.Join(root, ChipLayoutB), problems[0].Target.Path)
	require.ErrorIs(t, problems[0].Err, types.ErrMissingRegion)

	require.Equal(t, filepath.Join(root, UserspaceLayoutA), problems[1].Target.Path)
	require.ErrorIs(t, problems[1].Err, types.ErrFileAccess)
}

func TestVerifyTargets_DoesNotWrite(t *testing.T) {
	root := testutil.WriteTree(t)
	VerifyTargets(DefaultPlan(root))

	require.Equal(t, testutil.ChipLayoutText, testutil.ReadFile(t, filepath.Join(root, ChipLayoutA)))
	require.Equal(t, testutil.UserspaceLayoutText, testutil.ReadFile(t, filepath.Join(root, UserspaceLayoutA)))
}
