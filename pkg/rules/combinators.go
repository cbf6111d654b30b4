package rules

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// All runs validators in order and reports the first failure.
func All(validators ...form.Validator) form.Validator {
	return func(ctx context.Context, value any, values form.Values) error {
		for _, v := range validators {
			if err := v(ctx, value, values); err != nil {
				return err
			}
		}
		return nil
	}
}

// Optional passes nil and empty-string values without running v, making a
// rule apply only once the field has content.
func Optional(v form.Validator) form.Validator {
	return func(ctx context.Context, value any, values form.Values) error {
		if value == nil {
			return nil
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return nil
		}
		return v(ctx, value, values)
	}
}

// WithMessage replaces any failure of v with a fixed message.
func WithMessage(v form.Validator, message string) form.Validator {
	return func(ctx context.Context, value any, values form.Values) error {
		if err := v(ctx, value, values); err != nil {
			return errors.New(message)
		}
		return nil
	}
}
