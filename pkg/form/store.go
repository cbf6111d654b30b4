package form

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/formstate/pkg/broadcast"
)

// State returns a snapshot of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// apply is the single write path for the form aggregate. fn mutates the
// canonical state in place while the form lock is held, so every transition
// observes the most recently committed state - never a captured stale copy.
// The resulting snapshot is broadcast to subscribers and returned; a
// transition that leaves the state unchanged is not broadcast, so redundant
// update cycles never reach consumers.
func (f *Form) apply(fn func(s *State)) State {
	f.mu.Lock()
	before := f.state.clone()
	fn(&f.state)
	snap := f.state.clone()
	f.mu.Unlock()

	if !reflect.DeepEqual(before, snap) {
		f.broadcaster.Publish(snap)
	}
	return snap
}

// Subscribe registers a consumer of state snapshots, typically a rendering
// layer. A subscriber that lags behind observes only the newest snapshot;
// intermediate ones are conflated away. The subscription is cleaned up when
// ctx is cancelled or the subscriber is closed.
func (f *Form) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return f.broadcaster.Subscribe(ctx)
}

// SetOption configures a value write.
type SetOption func(*setOptions)

type setOptions struct {
	keepPristine bool
}

// KeepPristine writes the value without flipping dirty tracking or clearing
// the submitted flag. Meant for programmatic seeding, not user edits.
func KeepPristine() SetOption {
	return func(o *setOptions) { o.keepPristine = true }
}

// SetValue writes one field value. Unless KeepPristine is given, the field is
// marked dirty and a previously completed submission is forgotten.
func (f *Form) SetValue(field string, value any, opts ...SetOption) {
	f.SetValues(Values{field: value}, opts...)
}

// SetValues writes several field values at once. Keys that no mounted field
// claims are still recorded; such fields participate in whole-form validation
// like any other (they pass trivially while no validator is registered).
func (f *Form) SetValues(values Values, opts ...SetOption) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	f.apply(func(s *State) {
		for field, value := range values {
			s.Values[field] = value
			if !o.keepPristine {
				s.DirtyFields[field] = true
				s.Submitted = false
			}
		}
		s.recomputeDirty()
	})
}

// MakePristine clears all dirty tracking without touching values or errors.
func (f *Form) MakePristine() {
	f.apply(func(s *State) {
		clear(s.DirtyFields)
		s.recomputeDirty()
	})
}

// MarkSubmitted records that a submission attempt has completed.
func (f *Form) MarkSubmitted() {
	f.apply(func(s *State) {
		s.Submitted = true
	})
}

// Reset recreates the initial snapshot: errors, dirty tracking, and status
// flags return to their defaults, and every mounted field is re-seeded from
// the initial value it registered with. Values of unmounted (bulk-set)
// fields are discarded.
func (f *Form) Reset() {
	f.apply(func(s *State) {
		*s = newState()
		for field, entry := range f.registry {
			s.Values[field] = entry.initial
		}
	})
}
