package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lefergusion/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestDo(t *testing.T) {
	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		var calls int
		c := retry.Config{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			if calls < 3 {
				return errBoom
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		var calls int
		c := retry.Config{
			MaxAttempts: 2,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			return errBoom
		})

		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 2, calls)
	})

	t.Run("ShouldRetryStopsEarly", func(t *testing.T) {
		var calls int
		c := retry.Config{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
			ShouldRetry: func(error) bool { return false },
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			return errBoom
		})

		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, retry.Config{}, func() error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
