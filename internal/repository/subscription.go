package repository

import (
	"context"
	"sync"
)

// Subscription is a live feed of full replacement snapshots. Publishing
// keeps only the newest snapshot when the consumer lags, which is sound
// because every snapshot is complete: the consumer never needs an
// intermediate state to catch up.
type Subscription[T any] struct {
	snapshots chan []T
	errs      chan error
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewSubscription wires a subscription around the producer's cancel func.
func NewSubscription[T any](cancel context.CancelFunc) *Subscription[T] {
	return &Subscription[T]{
		snapshots: make(chan []T, 1),
		errs:      make(chan error, 1),
		cancel:    cancel,
	}
}

// Snapshots delivers full replacement snapshots until the feed is closed.
func (s *Subscription[T]) Snapshots() <-chan []T {
	return s.snapshots
}

// Errs delivers feed errors (taxonomy-mapped store errors).
func (s *Subscription[T]) Errs() <-chan error {
	return s.errs
}

// Cancel detaches the subscription; the producer closes the channels once
// it has observed the cancellation.
func (s *Subscription[T]) Cancel() {
	s.cancel()
}

// Publish replaces any undelivered snapshot with the newest one. Producer
// side only.
func (s *Subscription[T]) Publish(snapshot []T) {
	for {
		select {
		case s.snapshots <- snapshot:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}

// Fail reports a feed error without blocking; an undelivered older error is
// dropped in favor of the new one. Producer side only.
func (s *Subscription[T]) Fail(err error) {
	for {
		select {
		case s.errs <- err:
			return
		default:
			select {
			case <-s.errs:
			default:
			}
		}
	}
}

// Close shuts the channels down. Producer side only, after the last Publish.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.snapshots)
		close(s.errs)
	})
}
