package form

import "context"

type contextKey struct{}

// WithForm returns a context carrying the given form. Nesting is shadowing:
// a form attached further down the chain hides any form attached above it,
// so lookups always resolve against the nearest enclosing context.
func WithForm(ctx context.Context, f *Form) context.Context {
	return context.WithValue(ctx, contextKey{}, f)
}

// FromContext returns the nearest form attached to ctx, or ErrNotInContext
// when there is none.
func FromContext(ctx context.Context) (*Form, error) {
	f, ok := ctx.Value(contextKey{}).(*Form)
	if !ok {
		return nil, ErrNotInContext
	}
	return f, nil
}

// MustFromContext returns the nearest form attached to ctx and panics when
// there is none. Calling a form operation outside an active form context is
// a structural wiring mistake; it must fail immediately, not be swallowed.
func MustFromContext(ctx context.Context) *Form {
	f, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return f
}
