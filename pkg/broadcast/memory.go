package broadcast

import (
	"context"
	"sync"
)

// Broadcaster fans values out to any number of subscribers, conflating
// deliveries for lagging consumers. All methods are safe for concurrent use.
type Broadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[*subscriber[T]]struct{}
	closed      bool
	done        chan struct{}
	cleanupWg   sync.WaitGroup
}

// New creates an in-memory conflating broadcaster.
func New[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. The subscription is cleaned up
// automatically when ctx is cancelled. Subscribing to a closed broadcaster
// returns an already-closed subscriber.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T]()
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
				// Close already shut every subscriber down.
			}
		}()
	}

	return sub
}

// Publish delivers value to every active subscriber. A subscriber that has
// not drained its previous value observes only the newest one; Publish never
// blocks on a slow consumer.
func (b *Broadcaster[T]) Publish(value T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for sub := range b.subscribers {
		sub.send(value)
	}
}

// Close shuts down the broadcaster and closes all subscribers.
// It is safe to call Close multiple times.
func (b *Broadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()
	return nil
}

func (b *Broadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
