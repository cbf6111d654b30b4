// Package form is a form-state orchestration engine: it maintains one
// consistent snapshot of values, per-field validation errors, and
// dirty/pristine/submitted flags for a dynamically changing set of named
// fields, and coordinates concurrent per-field validation into a single
// whole-form pass.
//
// The package is a library boundary, not a UI layer: rendering, input
// widgets, and submit-button wiring are consumers that call the bound
// operations and read the emitted snapshots. The engine performs no I/O and
// persists nothing.
//
// # Architecture
//
// One Form value owns one State aggregate plus the validator registry keyed
// by field name. Every mutation funnels through a single atomic apply
// operation under the form lock, so transitions always run against the most
// recently committed state and a snapshot of each committed transition is
// broadcast to subscribers (conflated for slow consumers via the broadcast
// package).
//
//   - Store:     State, Form.State, Form.Subscribe, SetValue/SetValues,
//     MakePristine, MarkSubmitted, Reset
//   - Lifecycle: Form.Mount / Form.Unmount and the Field handle
//   - Validation: Form.ValidateField (pure, single-field) and Form.Validate
//     (whole-form fan-out/fan-in built on the async package)
//   - Submission: Form.WrapSubmit / Form.SubmitHandler
//
// # Usage
//
//	f := form.New(form.WithOnSubmitError(func(st form.State) {
//	    renderSummary(st.Errors)
//	}))
//
//	name := f.Mount("name", "", rules.All(rules.Required(), rules.MinLen(6)), false)
//	age := f.Mount("age", 0, nil, false)
//
//	name.Set("Blabla")
//	_ = age
//
//	submit := f.WrapSubmit(func(ctx context.Context, values form.Values) error {
//	    return save(ctx, values)
//	}, form.SubmitOptions{MakePristine: true, PreventDefault: true})
//
//	_ = submit(ctx, browserEvent)
//
// # Concurrency
//
// All Form methods are safe for concurrent use. Whole-form passes may
// overlap; each commits only the results of the validators it launched, and
// the store ends up with the aggregate of whichever pass completed last. The
// engine defines no validator timeout: a hung validator keeps the form in
// Loading until it returns, and callers who need a bound must build it into
// the validator itself.
//
// # Error Handling
//
// Validator failures never escape: returned errors and panics alike are
// normalized into FieldError values stored in State.Errors. An invalid
// whole-form result is a state, not an error - consumers read State.Invalid
// and State.Errors, and submission failures reach the configured
// WithOnSubmitError hook. The one loud failure is ErrNotInContext (or the
// MustFromContext panic): asking for a form where none is attached is a
// wiring bug in the caller.
package form
