//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"beads-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("domain validation error")

	t.Run("mark is visible to the standard errors.Is", func(t *testing.T) {
		cause := errors.New("invalid payment status")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("boom"), sentinel), "saving order")

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause collapses to the mark", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.Equal(t, sentinel, err)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("message and cause are both retained", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Wrap(cause, "failed to ping database")

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to ping database")
	})
}
