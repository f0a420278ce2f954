package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[ErrorCategory]string{
		Argument:         "Argument Error",
		Configuration:    "Configuration Error",
		Prerequisite:     "Prerequisite Error",
		Runtime:          "Runtime Error",
		ErrorCategory(9): "Error",
	}
	for category, want := range tests {
		assert.Equal(t, want, category.String())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	wrapped := Wrap(os.ErrNotExist, Prerequisite)
	require.NotNil(t, wrapped)
	assert.Equal(t, Prerequisite, wrapped.Category)
	assert.ErrorIs(t, wrapped, os.ErrNotExist)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "never seen"))
}

func TestWrapWithMessage(t *testing.T) {
	cause := stderrors.New("disk full")
	wrapped := WrapWithMessage(cause, Runtime, "writing changelog")
	require.NotNil(t, wrapped)
	assert.Equal(t, "writing changelog: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewRuntimeError("boom")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
	assert.Nil(t, AsCLIError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewArgumentErrorWithUsage(
		"invalid fragment name",
		"fraglog create <id>.<type>",
		"Use a numeric id",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Argument Error]: invalid fragment name")
	assert.Contains(t, out, "Usage: fraglog create <id>.<type>")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "  • Use a numeric id")
}

func TestFormatErrorNil(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}
