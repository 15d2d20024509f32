package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidInput, "bad arguments")

	assert.Equal(t, ErrInvalidInput, err.Code)
	assert.Equal(t, "bad arguments", err.Message)
	assert.Equal(t, "[INVALID_INPUT] bad arguments", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrNotAppBundle, "path %q does not end in .app", "/tmp/foo")

	assert.Equal(t, ErrNotAppBundle, err.Code)
	assert.Equal(t, `path "/tmp/foo" does not end in .app`, err.Message)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrDirCreate, "failed to create alias directory")

	require.NotNil(t, err)
	assert.Equal(t, ErrDirCreate, err.Code)
	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "permission denied")

	assert.Nil(t, Wrap(nil, ErrDirCreate, "no-op"))
}

func TestErrorsIs(t *testing.T) {
	err := Newf(ErrTargetExists, "target %q already exists", "Foo.app")

	assert.True(t, stderrors.Is(err, New(ErrTargetExists, "")))
	assert.False(t, stderrors.Is(err, New(ErrNotAppBundle, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrAliasAmbiguous, "expected exactly one entry")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrAliasAmbiguous))
	assert.False(t, IsErrorCode(wrapped, ErrAliasCreate))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrAliasCreate))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrToolRun, GetErrorCode(New(ErrToolRun, "osascript failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrToolRun, "tool failed").
		WithDetail("tool", "osacompile").
		WithDetail("stderr", "syntax error")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "osacompile", details["tool"])
	assert.Equal(t, "syntax error", details["stderr"])
}
