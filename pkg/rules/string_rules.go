package rules

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// Required fails for nil values and for strings that are empty after
// trimming whitespace. Non-string, non-nil values always pass.
func Required() form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		if value == nil {
			return ErrRequired
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return ErrRequired
		}
		return nil
	}
}

// MinLen fails when the string value is shorter than min characters.
// Non-string values fail with ErrNotString.
func MinLen(min int) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		s, ok := value.(string)
		if !ok {
			return ErrNotString
		}
		if len(s) < min {
			return fmt.Errorf("must be at least %d characters long", min)
		}
		return nil
	}
}

// MaxLen fails when the string value is longer than max characters.
// Non-string values fail with ErrNotString.
func MaxLen(max int) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		s, ok := value.(string)
		if !ok {
			return ErrNotString
		}
		if len(s) > max {
			return fmt.Errorf("must be at most %d characters long", max)
		}
		return nil
	}
}

// ValidEmail fails when the string value is not a parseable email address.
func ValidEmail() form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		s, ok := value.(string)
		if !ok {
			return ErrNotString
		}
		if _, err := mail.ParseAddress(s); err != nil {
			return ErrInvalidEmail
		}
		return nil
	}
}

// Match fails when the string value does not match the given pattern.
func Match(re *regexp.Regexp) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		s, ok := value.(string)
		if !ok {
			return ErrNotString
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match pattern %s", re.String())
		}
		return nil
	}
}

// InList fails when the string value is not one of the allowed choices.
func InList(allowed ...string) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		s, ok := value.(string)
		if !ok {
			return ErrNotString
		}
		for _, choice := range allowed {
			if s == choice {
				return nil
			}
		}
		return ErrInvalidChoice
	}
}
