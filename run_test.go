package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := runWithRetry(context.Background(), 3, time.Second, func(context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("transient %d", calls)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunWithRetryGivesUpWithLastError(t *testing.T) {
	calls := 0
	err := runWithRetry(context.Background(), 3, time.Second, func(context.Context) error {
		calls++
		return fmt.Errorf("attempt %d", calls)
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "attempt 3", err.Error(), "diagnostics of the last attempt are kept")
}

func TestRunWithRetryStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := runWithRetry(ctx, 10, time.Second, func(context.Context) error {
		calls++
		cancel()
		return fmt.Errorf("failing")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "no further attempts once the context is cancelled")
}
