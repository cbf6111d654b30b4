package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/rules"
)

type fakeEvent struct {
	defaultPrevented   bool
	propagationStopped bool
}

func (e *fakeEvent) PreventDefault()  { e.defaultPrevented = true }
func (e *fakeEvent) StopPropagation() { e.propagationStopped = true }

func TestWrapSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invokes the callback with validated values", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		f.Mount("name", "Blabla", rules.MinLen(6), false)

		var got form.Values
		handler := f.WrapSubmit(func(_ context.Context, values form.Values) error {
			got = values
			return nil
		}, form.SubmitOptions{})

		require.NoError(t, handler(ctx, nil))
		assert.Equal(t, "Blabla", got["name"])
	})

	t.Run("never invokes the callback when invalid", func(t *testing.T) {
		t.Parallel()

		var hookState form.State
		hookCalled := false
		f := newTestForm(form.WithOnSubmitError(func(st form.State) {
			hookState = st
			hookCalled = true
		}))
		f.Mount("name", "Bla", rules.MinLen(6), false)

		callbackCalled := false
		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			callbackCalled = true
			return nil
		}, form.SubmitOptions{})

		require.NoError(t, handler(ctx, nil))
		assert.False(t, callbackCalled)
		require.True(t, hookCalled)
		assert.True(t, hookState.Invalid)
		assert.True(t, hookState.Errors.Has("name"))
	})

	t.Run("rejects silently without a hook", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		f.Mount("name", "", rules.Required(), false)

		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			t.Fatal("callback must not run")
			return nil
		}, form.SubmitOptions{})

		assert.NoError(t, handler(ctx, nil))
	})

	t.Run("suppresses the event's default behavior when requested", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()

		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			return nil
		}, form.SubmitOptions{PreventDefault: true})

		evt := &fakeEvent{}
		require.NoError(t, handler(ctx, evt))
		assert.True(t, evt.defaultPrevented)
		assert.True(t, evt.propagationStopped)
	})

	t.Run("leaves the event alone when not requested", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()

		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			return nil
		}, form.SubmitOptions{})

		evt := &fakeEvent{}
		require.NoError(t, handler(ctx, evt))
		assert.False(t, evt.defaultPrevented)
	})

	t.Run("applies make-pristine bookkeeping after the callback", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		f.Mount("x", "", nil, false)
		f.SetValue("x", "new")

		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			return nil
		}, form.SubmitOptions{MakePristine: true})

		require.NoError(t, handler(ctx, nil))
		st := f.State()
		assert.True(t, st.Pristine)
		assert.True(t, st.Submitted)
	})

	t.Run("a failing callback propagates and skips bookkeeping", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		f.Mount("x", "", nil, false)
		f.SetValue("x", "new")

		sentinel := errors.New("save failed")
		handler := f.WrapSubmit(func(_ context.Context, _ form.Values) error {
			return sentinel
		}, form.SubmitOptions{MakePristine: true})

		assert.ErrorIs(t, handler(ctx, nil), sentinel)
		st := f.State()
		assert.True(t, st.Dirty)
		assert.False(t, st.Submitted)
	})
}

func TestSubmitHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reuses the handler while deps are unchanged", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()

		calledFirst := false
		f.SubmitHandler(func(_ context.Context, _ form.Values) error {
			calledFirst = true
			return nil
		}, form.SubmitOptions{}, "dep", 1)

		// Same deps: the cached handler, closing over the first callback,
		// must be returned even though a new callback is supplied.
		handler := f.SubmitHandler(func(_ context.Context, _ form.Values) error {
			t.Fatal("second callback must not run while deps are unchanged")
			return nil
		}, form.SubmitOptions{}, "dep", 1)

		require.NoError(t, handler(ctx, nil))
		assert.True(t, calledFirst)
	})

	t.Run("rebuilds the handler when deps change", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()

		f.SubmitHandler(func(_ context.Context, _ form.Values) error {
			t.Fatal("stale callback must not run after deps changed")
			return nil
		}, form.SubmitOptions{}, "dep", 1)

		calledSecond := false
		handler := f.SubmitHandler(func(_ context.Context, _ form.Values) error {
			calledSecond = true
			return nil
		}, form.SubmitOptions{}, "dep", 2)

		require.NoError(t, handler(ctx, nil))
		assert.True(t, calledSecond)
	})
}
