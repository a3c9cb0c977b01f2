package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionKeepsNewestSnapshot(t *testing.T) {
	sub := NewSubscription[int](func() {})

	// With no consumer draining, only the newest snapshot survives.
	sub.Publish([]int{1})
	sub.Publish([]int{1, 2})
	sub.Publish([]int{1, 2, 3})

	got := <-sub.Snapshots()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSubscriptionKeepsNewestError(t *testing.T) {
	sub := NewSubscription[int](func() {})

	sub.Fail(ErrUnavailable)
	sub.Fail(ErrUnauthenticated)

	err := <-sub.Errs()
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSubscriptionCancelAndClose(t *testing.T) {
	cancelled := false
	sub := NewSubscription[int](func() { cancelled = true })

	sub.Cancel()
	assert.True(t, cancelled)

	sub.Publish([]int{1})
	sub.Close()
	sub.Close() // idempotent

	// Pending snapshot is still delivered, then the channel reports closed.
	_, ok := <-sub.Snapshots()
	require.True(t, ok)
	_, ok = <-sub.Snapshots()
	assert.False(t, ok)
}
