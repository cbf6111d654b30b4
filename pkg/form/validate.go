package form

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Validator checks one field's value against the whole-form values snapshot.
// A nil return means the value is acceptable. A non-nil error is normalized
// into a FieldError carrying the error's message; a panicking validator is
// treated the same way, with the panic value as the message. Validators that
// need to wait on external work (lookups, timers) simply block: the engine
// runs each one on its own goroutine during a whole-form pass. The engine
// imposes no timeout - a validator that needs one must enforce it itself,
// for example via the ctx it receives.
type Validator func(ctx context.Context, value any, values Values) error

// ValidateOptions controls the bookkeeping applied after a whole-form pass.
type ValidateOptions struct {
	// MakePristine clears dirty tracking and marks the form submitted when
	// the pass comes back valid.
	MakePristine bool
	// MakeSubmitted marks the form submitted when the pass comes back
	// valid, leaving dirty tracking alone.
	MakeSubmitted bool
}

// ValidateField runs the registered validator for one field against the
// current values snapshot and returns the normalized outcome. It reads but
// never writes shared state; with a pure validator and unchanged values the
// result is the same on every call. A field with no registered validator
// passes trivially.
func (f *Form) ValidateField(ctx context.Context, field string) *FieldError {
	f.mu.Lock()
	entry := f.registry[field]
	value := f.state.Values[field]
	snapshot := f.state.Values.clone()
	f.mu.Unlock()

	if entry.validator == nil {
		return nil
	}
	return runValidator(ctx, field, entry.validator, value, snapshot)
}

// Validate runs a whole-form validation pass and returns the state this pass
// computed.
//
// The pass captures an immutable snapshot of the current values, enters
// loading (errors cleared, the verdict optimistically Valid until the pass
// says otherwise), fans out one concurrent validator run per field currently present
// in the values - including fields that were bulk-set but never mounted -
// and waits for every branch before committing a single aggregate. Partial
// results are never committed, and aggregation depends only on field
// identity, never on completion order.
//
// A result whose field was unmounted while its validator was in flight is
// discarded at commit time; a removed field's error is never resurrected.
//
// Overlapping passes are safe: each aggregates only the results of the
// validators it launched itself, and the store ends up with the aggregate of
// whichever pass completed last. The returned snapshot is always the one
// this pass committed, which is why callers must use it rather than re-read
// the store.
func (f *Form) Validate(ctx context.Context, opts ValidateOptions) State {
	started := time.Now()

	var snapshot Values
	var validators map[string]Validator
	f.apply(func(s *State) {
		f.inflight++
		s.Loading = true
		s.Errors = Errors{}
		s.Valid = true
		s.Invalid = false
		snapshot = s.Values.clone()
		validators = f.validatorsFor(s.Values)
	})

	futures := make(map[string]*async.Future[*FieldError], len(snapshot))
	for field, value := range snapshot {
		validator := validators[field]
		if validator == nil {
			futures[field] = async.Resolved[*FieldError](nil, nil)
			continue
		}
		futures[field] = async.Go(ctx, func(ctx context.Context) (*FieldError, error) {
			return runValidator(ctx, field, validator, value, snapshot), nil
		})
	}

	results := async.Settle(futures)

	state := f.apply(func(s *State) {
		f.inflight--

		errs := Errors{}
		for field, res := range results {
			fieldErr := res.Value
			if res.Err != nil {
				fieldErr = &FieldError{Field: field, Message: res.Err.Error()}
			}
			if fieldErr == nil {
				continue
			}
			if _, present := s.Values[field]; !present {
				continue
			}
			errs[field] = fieldErr
		}

		s.Errors = errs
		s.Valid = errs.IsEmpty()
		s.Invalid = !s.Valid
		s.Loading = f.inflight > 0

		if s.Valid && opts.MakePristine {
			clear(s.DirtyFields)
			s.recomputeDirty()
			s.Submitted = true
		} else if s.Valid && opts.MakeSubmitted {
			s.Submitted = true
		}
	})

	f.log.Debug("whole-form validation completed",
		logger.FormID(f.id),
		logger.ErrCount(len(state.Errors)),
		"duration", time.Since(started),
	)
	return state
}

// runValidator invokes a validator and normalizes every possible outcome -
// nil, error, wrapped FieldError, or panic - into at most one *FieldError.
// Nothing a validator does escapes as a raised failure.
func runValidator(ctx context.Context, field string, validator Validator, value any, values Values) (fieldErr *FieldError) {
	defer func() {
		if r := recover(); r != nil {
			fieldErr = &FieldError{Field: field, Message: fmt.Sprintf("%v", r)}
		}
	}()

	if err := validator(ctx, value, values); err != nil {
		return &FieldError{Field: field, Message: err.Error()}
	}
	return nil
}
