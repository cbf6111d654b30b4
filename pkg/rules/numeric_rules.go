package rules

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formstate/pkg/form"
)

// Min fails when the numeric value is below min.
// Non-numeric values fail with ErrNotNumeric.
func Min(min float64) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		n, ok := toFloat(value)
		if !ok {
			return ErrNotNumeric
		}
		if n < min {
			return fmt.Errorf("must be at least %v", min)
		}
		return nil
	}
}

// Max fails when the numeric value is above max.
// Non-numeric values fail with ErrNotNumeric.
func Max(max float64) form.Validator {
	return func(_ context.Context, value any, _ form.Values) error {
		n, ok := toFloat(value)
		if !ok {
			return ErrNotNumeric
		}
		if n > max {
			return fmt.Errorf("must be at most %v", max)
		}
		return nil
	}
}

// toFloat coerces the numeric types a form value realistically arrives as.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
