package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
	"github.com/arthur-debert/appalias/pkg/testutil"
)

func newTestBundle(t *testing.T, root, name string) string {
	t.Helper()
	return testutil.CreateAppBundle(t, root, name, "")
}

func TestEmbed(t *testing.T) {
	root := testutil.TempDir(t)
	source := newTestBundle(t, root, "Example.app")
	target := newTestBundle(t, root, "ExampleAlias.app")

	var script string
	runner := &testutil.FakeRunner{
		Handler: func(name string, args []string) (string, error) {
			// Simulate Finder dropping an alias file into the directory.
			require.Equal(t, "/usr/bin/osascript", name)
			require.Equal(t, "-e", args[0])
			script = args[1]

			produced := filepath.Join(paths.AliasDir(target), "Example.app alias")
			require.NoError(t, os.WriteFile(produced, []byte("alias-bytes"), 0644))
			return "", nil
		},
	}

	e := NewEmbedder(runner, "/usr/bin/osascript", afero.NewOsFs())
	err := e.Embed(context.Background(), source, target)
	require.NoError(t, err)

	assert.Contains(t, script, "make new alias file")
	assert.Contains(t, script, osarun.QuoteAppleScript(source))
	assert.Contains(t, script, osarun.QuoteAppleScript(paths.AliasDir(target)))

	assert.FileExists(t, paths.AliasFile(target))
}

func TestEmbedNoEntryProduced(t *testing.T) {
	root := testutil.TempDir(t)
	source := newTestBundle(t, root, "Example.app")
	target := newTestBundle(t, root, "ExampleAlias.app")

	// Automation reports success but produces nothing.
	runner := &testutil.FakeRunner{}

	e := NewEmbedder(runner, "/usr/bin/osascript", afero.NewOsFs())
	err := e.Embed(context.Background(), source, target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasAmbiguous))
}

func TestEmbedMultipleEntriesProduced(t *testing.T) {
	root := testutil.TempDir(t)
	source := newTestBundle(t, root, "Example.app")
	target := newTestBundle(t, root, "ExampleAlias.app")

	runner := &testutil.FakeRunner{
		Handler: func(name string, args []string) (string, error) {
			dir := paths.AliasDir(target)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "one"), nil, 0644))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "two"), nil, 0644))
			return "", nil
		},
	}

	e := NewEmbedder(runner, "/usr/bin/osascript", afero.NewOsFs())
	err := e.Embed(context.Background(), source, target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasAmbiguous))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["entries"])
}

func TestEmbedAliasDirAlreadyExists(t *testing.T) {
	root := testutil.TempDir(t)
	source := newTestBundle(t, root, "Example.app")
	target := newTestBundle(t, root, "ExampleAlias.app")
	require.NoError(t, os.MkdirAll(paths.AliasDir(target), 0755))

	runner := &testutil.FakeRunner{}

	e := NewEmbedder(runner, "/usr/bin/osascript", afero.NewOsFs())
	err := e.Embed(context.Background(), source, target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Empty(t, runner.Calls, "no automation should run when mkdir fails")
}

func TestEmbedAutomationFailure(t *testing.T) {
	root := testutil.TempDir(t)
	source := newTestBundle(t, root, "Example.app")
	target := newTestBundle(t, root, "ExampleAlias.app")

	runner := &testutil.FakeRunner{
		Errs: map[string]error{
			"osascript": errors.New(errors.ErrToolRun, "Finder got an error"),
		},
	}

	e := NewEmbedder(runner, "/usr/bin/osascript", afero.NewOsFs())
	err := e.Embed(context.Background(), source, target)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasCreate))
}
