package gkr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofError(t *testing.T) {
	t.Run("MessageWithoutCause", func(t *testing.T) {
		err := newError(ErrInvalidCircuit, "bad circuit", nil)
		assert.Contains(t, err.Error(), "bad circuit")
	})

	t.Run("MessageWithCause", func(t *testing.T) {
		cause := fmt.Errorf("layer 2 width 3 is not a power of two")
		err := newError(ErrInvalidCircuit, "bad circuit", cause)
		assert.Contains(t, err.Error(), "caused by")
		assert.Contains(t, err.Error(), "power of two")
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := fmt.Errorf("inner")
		err := newError(ErrProofGeneration, "outer", cause)
		require.ErrorIs(t, err, cause)
	})

	t.Run("IsMatchesByCode", func(t *testing.T) {
		err := newError(ErrSerialization, "whatever", nil)
		assert.True(t, errors.Is(err, &ProofError{Code: ErrSerialization}))
		assert.False(t, errors.Is(err, &ProofError{Code: ErrInvalidInput}))
	})
}
