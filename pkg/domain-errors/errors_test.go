package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodedErrors(t *testing.T) {
	t.Run("wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Wrap(cause, CodeInternal, "failed to load class")

		assert.ErrorIs(t, err, cause)
		assert.True(t, HasCode(err, CodeInternal))
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("service: %w", New(CodeNotFound, "class not found"))

		assert.True(t, Is(err, CodeNotFound))
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("outermost code wins", func(t *testing.T) {
		inner := New(CodeConflict, "duplicate")
		outer := Wrap(inner, CodeInternal, "tx failed")

		assert.Equal(t, CodeInternal, CodeOf(outer))
		assert.False(t, HasCode(outer, CodeConflict))
	})

	t.Run("uncoded errors classify as internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
		_, ok := As(errors.New("boom"))
		require.False(t, ok)
	})

	t.Run("client error classification", func(t *testing.T) {
		for _, code := range []Code{CodeValidation, CodeBadRequest, CodeNotFound, CodeConflict, CodeInvariantViolation} {
			assert.True(t, code.IsClientError(), string(code))
		}
		assert.False(t, CodeInternal.IsClientError())
		assert.False(t, CodeTimeout.IsClientError())
	})
}
