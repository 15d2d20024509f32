package bundle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appalias/pkg/errors"
	"github.com/arthur-debert/appalias/pkg/osarun"
	"github.com/arthur-debert/appalias/pkg/paths"
	"github.com/arthur-debert/appalias/pkg/testutil"
)

func TestResolve(t *testing.T) {
	runner := &testutil.FakeRunner{
		Outputs: map[string]string{"osascript": "/Applications/Example.app"},
	}

	r := NewResolver(runner, "/usr/bin/osascript")
	got, err := r.Resolve(context.Background(), "/tmp/ExampleAlias.app")
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Example.app", got)

	calls := runner.CallsTo("osascript")
	require.Len(t, calls, 1)
	require.Equal(t, "-e", calls[0].Args[0])

	script := calls[0].Args[1]
	assert.Contains(t, script, osarun.QuoteAppleScript(paths.AliasFile("/tmp/ExampleAlias.app")))
	assert.Contains(t, script, "original item")
	assert.Contains(t, script, `kind of aliasItem is "Alias"`)
}

func TestResolveEmptyOutput(t *testing.T) {
	// The kind check failed and the script returned nothing.
	runner := &testutil.FakeRunner{}

	r := NewResolver(runner, "/usr/bin/osascript")
	_, err := r.Resolve(context.Background(), "/tmp/NotAnAlias.app")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasResolve))
}

func TestResolveAutomationFailure(t *testing.T) {
	runner := &testutil.FakeRunner{
		Errs: map[string]error{
			"osascript": errors.New(errors.ErrToolRun, "File wasn't found"),
		},
	}

	r := NewResolver(runner, "/usr/bin/osascript")
	_, err := r.Resolve(context.Background(), "/tmp/Broken.app")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasResolve))
}
