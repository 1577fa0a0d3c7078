package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetryConfig keeps retry tests quick while exercising the same path.
func fastRetryConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:     maxAttempts,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		RetryableErrors: func(error) bool { return true },
	}
}

func TestRetryWithConfig_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := RetryWithConfig(context.Background(), fastRetryConfig(3), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithConfig_RetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := RetryWithConfig(context.Background(), fastRetryConfig(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithConfig_ExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("persistent")

	err := RetryWithConfig(context.Background(), fastRetryConfig(3), func() error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestRetryWithConfig_NonRetryableStopsImmediately(t *testing.T) {
	config := fastRetryConfig(5)
	config.RetryableErrors = func(error) bool { return false }
	calls := 0

	err := RetryWithConfig(context.Background(), config, func() error {
		calls++
		return errors.New("fatal")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithConfig_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithConfig(ctx, fastRetryConfig(3), func() error {
		return errors.New("never retried")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommentRetryConfig(t *testing.T) {
	config := CommentRetryConfig()

	assert.Equal(t, 2, config.MaxAttempts)
	assert.Equal(t, 4*time.Second, config.InitialDelay)
	assert.Equal(t, 4*time.Second, config.MaxDelay)
	assert.Equal(t, 1.0, config.BackoffFactor)
	assert.False(t, config.JitterEnabled)
	// Every comment failure is worth the single retry, whatever its shape.
	assert.True(t, config.RetryableErrors(errors.New("anything")))
}

func TestCalculateDelay_Backoff(t *testing.T) {
	config := RetryConfig{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      time.Second,
		BackoffFactor: 2.0,
	}

	assert.Equal(t, 100*time.Millisecond, calculateDelay(config, 0))
	assert.Equal(t, 200*time.Millisecond, calculateDelay(config, 1))
	assert.Equal(t, 400*time.Millisecond, calculateDelay(config, 2))
	// Capped at MaxDelay
	assert.Equal(t, time.Second, calculateDelay(config, 10))
}

func TestCalculateDelay_FixedWhenFactorIsOne(t *testing.T) {
	config := CommentRetryConfig()

	assert.Equal(t, 4*time.Second, calculateDelay(config, 0))
}
