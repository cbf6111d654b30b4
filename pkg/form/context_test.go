package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/form"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the attached form", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		ctx := form.WithForm(context.Background(), f)

		got, err := form.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, f, got)
	})

	t.Run("fails without an attached form", func(t *testing.T) {
		t.Parallel()
		_, err := form.FromContext(context.Background())
		assert.ErrorIs(t, err, form.ErrNotInContext)
	})

	t.Run("nested forms shadow, inner wins", func(t *testing.T) {
		t.Parallel()
		outer := newTestForm()
		inner := newTestForm()

		ctx := form.WithForm(context.Background(), outer)
		ctx = form.WithForm(ctx, inner)

		got, err := form.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, inner, got)
		assert.NotSame(t, outer, got)
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the attached form", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		ctx := form.WithForm(context.Background(), f)
		assert.Same(t, f, form.MustFromContext(ctx))
	})

	t.Run("panics without an attached form", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			form.MustFromContext(context.Background())
		})
	})
}

// Independent form contexts in the same process never share state.
func TestContextIsolation(t *testing.T) {
	t.Parallel()

	a := newTestForm()
	b := newTestForm()

	a.Mount("x", "from-a", nil, false)
	b.Mount("x", "from-b", nil, false)
	a.SetValue("x", "edited-a")

	assert.Equal(t, "edited-a", a.State().Values["x"])
	assert.Equal(t, "from-b", b.State().Values["x"])
	assert.True(t, a.State().Dirty)
	assert.True(t, b.State().Pristine)
	assert.NotEqual(t, a.ID(), b.ID())
}
