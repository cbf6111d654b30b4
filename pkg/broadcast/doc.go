// Package broadcast provides a type-safe, conflating one-to-many broadcaster
// for state snapshots.
//
// Unlike a message queue, the broadcaster assumes every published value
// supersedes the previous one: each subscriber holds at most one undelivered
// value, and publishing to a lagging subscriber replaces the stale pending
// value with the newest. A consumer that wakes up late therefore observes the
// latest state immediately instead of replaying an arbitrarily long backlog,
// and publishers never block on slow consumers.
//
// Basic usage:
//
//	b := broadcast.New[Snapshot]()
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	b.Publish(snapshot)
//
//	for snap := range sub.Receive() {
//	    render(snap)
//	}
//
// Subscriptions are cleaned up automatically when their context is cancelled,
// when the subscriber is closed, or when the broadcaster itself is closed.
package broadcast
