package rules_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/rules"
)

func run(v form.Validator, value any) error {
	return v(context.Background(), value, form.Values{})
}

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, run(rules.Required(), "content"))
	assert.NoError(t, run(rules.Required(), 0))
	assert.NoError(t, run(rules.Required(), false))
	assert.ErrorIs(t, run(rules.Required(), nil), rules.ErrRequired)
	assert.ErrorIs(t, run(rules.Required(), ""), rules.ErrRequired)
	assert.ErrorIs(t, run(rules.Required(), "   "), rules.ErrRequired)
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, run(rules.MinLen(5), "12345"))
	assert.NoError(t, run(rules.MinLen(5), "123456"))
	assert.ErrorIs(t, run(rules.MinLen(5), 12345), rules.ErrNotString)

	err := run(rules.MinLen(6), "Bla")
	require.Error(t, err)
	assert.Equal(t, "must be at least 6 characters long", err.Error())
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, run(rules.MaxLen(3), "abc"))
	assert.Error(t, run(rules.MaxLen(3), "abcd"))
	assert.ErrorIs(t, run(rules.MaxLen(3), nil), rules.ErrNotString)
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, run(rules.ValidEmail(), "test@example.com"))
	assert.ErrorIs(t, run(rules.ValidEmail(), "not-an-email"), rules.ErrInvalidEmail)
	assert.ErrorIs(t, run(rules.ValidEmail(), 42), rules.ErrNotString)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^[a-z]+$`)
	assert.NoError(t, run(rules.Match(re), "abc"))
	assert.Error(t, run(rules.Match(re), "Abc123"))
}

func TestInList(t *testing.T) {
	t.Parallel()

	v := rules.InList("draft", "published")
	assert.NoError(t, run(v, "draft"))
	assert.ErrorIs(t, run(v, "deleted"), rules.ErrInvalidChoice)
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.NoError(t, run(rules.Min(18), 18))
	assert.NoError(t, run(rules.Min(18), 18.5))
	assert.NoError(t, run(rules.Min(18), uint8(200)))
	assert.Error(t, run(rules.Min(18), 10))
	assert.ErrorIs(t, run(rules.Min(18), "18"), rules.ErrNotNumeric)

	assert.NoError(t, run(rules.Max(100), 100))
	assert.Error(t, run(rules.Max(100), 101))
}

func TestAll(t *testing.T) {
	t.Parallel()

	v := rules.All(rules.Required(), rules.MinLen(6))
	assert.NoError(t, run(v, "long enough"))
	assert.ErrorIs(t, run(v, ""), rules.ErrRequired)

	err := run(v, "Bla")
	require.Error(t, err)
	assert.Equal(t, "must be at least 6 characters long", err.Error())
}

func TestOptional(t *testing.T) {
	t.Parallel()

	v := rules.Optional(rules.ValidEmail())
	assert.NoError(t, run(v, nil))
	assert.NoError(t, run(v, ""))
	assert.NoError(t, run(v, "test@example.com"))
	assert.ErrorIs(t, run(v, "nope"), rules.ErrInvalidEmail)
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	v := rules.WithMessage(rules.MinLen(8), "password is too short")
	assert.NoError(t, run(v, "12345678"))

	err := run(v, "123")
	require.Error(t, err)
	assert.Equal(t, "password is too short", err.Error())
}
