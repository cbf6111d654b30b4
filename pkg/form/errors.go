package form

import "errors"

// ErrNotInContext is returned when a form is requested from a context that
// has none. Operating outside an active form context is a wiring mistake in
// the caller, not a recoverable runtime condition.
var ErrNotInContext = errors.New("form: no form in context")

// FieldError is a validation failure attributed to a single field. Every
// validator outcome - returned error, wrapped error, or panic - is normalized
// into this shape before it is stored in the state.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}
