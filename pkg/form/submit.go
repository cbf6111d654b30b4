package form

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Handler is a submit handler produced by WrapSubmit. The event argument is
// the originating interaction object, if any; pass nil when there is none.
type Handler func(ctx context.Context, event any) error

// DefaultPreventer is the capability a triggering event object may expose to
// have its default behavior suppressed before submission runs.
type DefaultPreventer interface {
	PreventDefault()
}

// PropagationStopper is the capability a triggering event object may expose
// to have its propagation stopped before submission runs.
type PropagationStopper interface {
	StopPropagation()
}

// SubmitOptions controls the wrapped handler's behavior.
type SubmitOptions struct {
	// MakePristine clears dirty tracking and marks the form submitted once
	// the callback has returned successfully.
	MakePristine bool
	// MakeSubmitted marks the form submitted once the callback has
	// returned successfully, leaving dirty tracking alone.
	MakeSubmitted bool
	// PreventDefault suppresses the triggering event's default behavior and
	// propagation, when the event object exposes those capabilities.
	PreventDefault bool
}

// submitPhase names the states of one handler invocation:
// idle -> validating -> invoking | rejected -> idle.
type submitPhase string

const (
	phaseValidating submitPhase = "validating"
	phaseInvoking   submitPhase = "invoking"
	phaseRejected   submitPhase = "rejected"
)

// WrapSubmit wraps callback so that it only runs after a successful
// whole-form validation.
//
// The returned handler first suppresses the triggering event's default and
// propagation behavior if requested and available, then runs a whole-form
// pass. When the pass is valid the callback receives the validated values;
// after it returns successfully the MakePristine/MakeSubmitted bookkeeping is
// applied. When the pass is invalid the callback is never called: the
// configured submit-error hook receives the invalid state instead, and a form
// with no hook rejects the attempt silently. In both cases the handler
// returns nil; only an error from the callback itself propagates.
func (f *Form) WrapSubmit(callback func(ctx context.Context, values Values) error, opts SubmitOptions) Handler {
	return func(ctx context.Context, event any) error {
		if opts.PreventDefault {
			if p, ok := event.(DefaultPreventer); ok {
				p.PreventDefault()
			}
			if p, ok := event.(PropagationStopper); ok {
				p.StopPropagation()
			}
		}

		f.logPhase(phaseValidating)
		state := f.Validate(ctx, ValidateOptions{})

		if state.Invalid {
			f.logPhase(phaseRejected)
			f.log.Info("submission rejected by validation",
				logger.FormID(f.id), logger.ErrCount(len(state.Errors)))
			if f.onSubmitError != nil {
				f.onSubmitError(state)
			}
			return nil
		}

		f.logPhase(phaseInvoking)
		if err := callback(ctx, state.Values); err != nil {
			return err
		}

		if opts.MakePristine {
			f.apply(func(s *State) {
				clear(s.DirtyFields)
				s.recomputeDirty()
				s.Submitted = true
			})
		} else if opts.MakeSubmitted {
			f.MarkSubmitted()
		}
		return nil
	}
}

// SubmitHandler is the caching variant of WrapSubmit: the returned handler is
// reused for as long as the supplied dependency list compares deep-equal to
// the previous call's. Consumers that hand the handler to an identity-
// sensitive rendering layer get a referentially stable value this way. The
// cached handler closes over the callback and options captured when the deps
// last changed.
func (f *Form) SubmitHandler(callback func(ctx context.Context, values Values) error, opts SubmitOptions, deps ...any) Handler {
	f.submitMu.Lock()
	defer f.submitMu.Unlock()

	if f.submitHandler != nil && reflect.DeepEqual(f.submitDeps, deps) {
		return f.submitHandler
	}
	f.submitDeps = deps
	f.submitHandler = f.WrapSubmit(callback, opts)
	return f.submitHandler
}

func (f *Form) logPhase(phase submitPhase) {
	f.log.Debug("submit phase", logger.FormID(f.id), slog.String("phase", string(phase)))
}
