package broadcast

import (
	"sync"
)

// Subscriber receives values published through a Broadcaster.
// Implementations are safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which published values arrive.
	// The channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases its resources.
	// Close is idempotent.
	Close() error
}

type subscriber[T any] struct {
	mu      sync.Mutex
	ch      chan T
	pending bool
	closed  bool
}

func newSubscriber[T any]() *subscriber[T] {
	// Buffer of exactly one: a subscriber only ever holds the newest
	// undelivered value, older pending values are conflated away.
	return &subscriber[T]{ch: make(chan T, 1)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers value, replacing an undelivered pending value if the
// consumer has not drained the channel yet. Returns false once closed.
func (s *subscriber[T]) send(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- value:
	default:
		// Consumer is lagging: swap the stale pending value for the new
		// one so the next receive always observes the latest state.
		select {
		case <-s.ch:
		default:
		}
		s.ch <- value
	}
	return true
}
