package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	base := stderrors.New("connection refused")
	err := Wrap(CodeNetwork, "fetch places", base)

	require.True(t, IsCode(err, CodeNetwork))
	require.False(t, IsCode(err, CodeStorage))
	require.ErrorIs(t, err, base)
	require.Equal(t, "fetch places: connection refused", err.Error())

	wrapped := fmt.Errorf("outer: %w", err)
	require.True(t, IsCode(wrapped, CodeNetwork))
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeInvalidInput, "location required", nil)
	require.Equal(t, "location required", err.Error())
	require.Nil(t, stderrors.Unwrap(err))
}
