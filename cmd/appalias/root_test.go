package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appalias/pkg/testutil"
)

// execute runs the root command with args and returns its combined output.
// Color is forced off so the fixed texts compare exactly.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APPALIAS_OUTPUT_COLOR", "never")

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "appalias <source.app> <target.app>")
	assert.Contains(t, out, "--target <alias.app>")
}

func TestSingleArgPrintsUsage(t *testing.T) {
	out, err := execute(t, "Example.app")
	require.NoError(t, err)
	assert.Contains(t, out, "appalias <source.app> <target.app>")
}

func TestHelpFlag(t *testing.T) {
	out, err := execute(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "redirects")
	assert.Contains(t, out, "--target")
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"source missing suffix", []string{"Example", "Alias.app"}},
		{"target missing suffix", []string{"Example.app", "Alias"}},
		{"both missing suffix", []string{"Example", "Alias"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, MsgErrFormat)

			// No filesystem mutation.
			_, statErr := os.Stat(tt.args[1])
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestTargetExistsError(t *testing.T) {
	root := testutil.TempDir(t)
	source := testutil.CreateAppBundle(t, root, "Example.app", "")
	target := testutil.CreateAppBundle(t, root, "ExampleAlias.app", "")

	out, err := execute(t, source, target)
	require.NoError(t, err)
	assert.Contains(t, out, MsgErrExists)

	// The pre-existing bundle is untouched.
	assert.DirExists(t, filepath.Join(target, "Contents", "Resources"))
}

func TestTargetExistsErrorWithTilde(t *testing.T) {
	home := testutil.TempDir(t)
	t.Setenv("HOME", home)

	source := testutil.CreateAppBundle(t, home, "Example.app", "")
	target := testutil.CreateAppBundle(t, home, "ExampleAlias.app", "")

	out, err := execute(t, source, "~/ExampleAlias.app")
	require.NoError(t, err)
	assert.Contains(t, out, MsgErrExists)

	assert.DirExists(t, filepath.Join(target, "Contents", "Resources"))
}

func TestDryRunPrintsNotice(t *testing.T) {
	root := testutil.TempDir(t)
	source := testutil.CreateAppBundle(t, root, "Example.app", "")
	target := filepath.Join(root, "ExampleAlias.app")

	out, err := execute(t, "--dry-run", source, target)
	require.NoError(t, err)
	assert.Contains(t, out, MsgDryRunNotice)

	// Dry run never touches the filesystem.
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTargetModeWithoutArgPrintsUsage(t *testing.T) {
	out, err := execute(t, "--target")
	require.NoError(t, err)
	assert.Contains(t, out, "appalias <source.app> <target.app>")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "appalias version")
	assert.Contains(t, out, "commit:")
}
