package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestContext(t *testing.T) {
	t.Run("missing values fall back", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, RequestID(ctx))

		before := time.Now()
		assert.False(t, Now(ctx).Before(before))
	})

	t.Run("injected values are returned", func(t *testing.T) {
		fixed := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithTime(WithRequestID(context.Background(), "req-1"), fixed)

		assert.Equal(t, "req-1", RequestID(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})
}
