package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("adds context and preserves the chain", func(t *testing.T) {
		err := Wrap(ErrCommandNotFound, "resolving prp-create")
		require.Error(t, err)
		assert.Equal(t, "resolving prp-create: command not found", err.Error())
		assert.ErrorIs(t, err, ErrCommandNotFound)
	})

	t.Run("nested wraps keep the sentinel reachable", func(t *testing.T) {
		err := Wrap(Wrap(ErrBackendInvocation, "inner"), "outer")
		assert.ErrorIs(t, err, ErrBackendInvocation)
		assert.Equal(t, "outer: inner: backend invocation failed", err.Error())
	})
}

func TestWrapf(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "context %s", "value"))
	})

	t.Run("interpolates the message", func(t *testing.T) {
		base := stderrors.New("permission denied")
		err := Wrapf(base, "reading %s", "/tmp/prp.md")
		require.Error(t, err)
		assert.Equal(t, "reading /tmp/prp.md: permission denied", err.Error())
		assert.ErrorIs(t, err, base)
	})
}
