package form

import "log/slog"

// Option configures a Form at construction time.
type Option func(*Form)

// WithOnSubmitError configures the hook invoked when a submit-triggered
// whole-form validation fails. The hook receives the invalid state snapshot.
// This is the only submission-failure signal the engine emits: without a
// hook, a failed submit attempt is rejected silently.
func WithOnSubmitError(hook func(State)) Option {
	return func(f *Form) { f.onSubmitError = hook }
}

// WithLogger sets the structured logger used by the form. By default the
// form builds one from the FORMSTATE_LOG_* environment variables.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// WithID overrides the generated form instance id used in log attributes.
func WithID(id string) Option {
	return func(f *Form) {
		if id != "" {
			f.id = id
		}
	}
}
