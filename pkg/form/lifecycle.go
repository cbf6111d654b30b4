package form

import (
	"reflect"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Mount declares a field's participation in the form and returns a handle
// bound to it.
//
// A field not yet present in the values is seeded with initial without being
// marked dirty. A field that already exists and is still pristine is
// re-seeded when its current value differs from initial - except when both
// the current and the candidate value are non-primitive: re-seeding on every
// reference change of a composite value would churn the state endlessly, so
// composite initial values only resync when force is set. The validator
// (which may be nil) is registered for the field either way.
//
// Mounting an already-mounted field is allowed and simply refreshes the
// registered validator and initial value; consumers re-declaring their
// participation do exactly that.
func (f *Form) Mount(field string, initial any, validator Validator, force bool) *Field {
	f.apply(func(s *State) {
		f.registry[field] = fieldEntry{validator: validator, initial: initial}

		current, exists := s.Values[field]
		switch {
		case !exists:
			s.Values[field] = initial
		case !s.DirtyFields[field] && !reflect.DeepEqual(current, initial):
			if force || isPrimitive(current) || isPrimitive(initial) {
				s.Values[field] = initial
			}
		}
	})

	f.log.Debug("field mounted", logger.FormID(f.id), logger.FieldName(field))
	return &Field{form: f, name: field}
}

// Unmount removes a field from the form: its validator is deregistered and
// its value, error, and dirty entries are pruned, regardless of how the value
// got there or whether it was dirty. Aggregate Dirty/Pristine flags are
// recomputed from the remaining fields.
func (f *Form) Unmount(field string) {
	f.apply(func(s *State) {
		delete(f.registry, field)
		delete(s.Values, field)
		delete(s.Errors, field)
		delete(s.DirtyFields, field)
		s.recomputeDirty()
	})

	f.log.Debug("field unmounted", logger.FormID(f.id), logger.FieldName(field))
}

// isPrimitive reports whether v is a scalar: nil, a boolean, a string, or a
// number. Composite kinds (maps, slices, structs, pointers, funcs) compare
// by deep structure yet are usually rebuilt on every consumer render, which
// is why the re-seed guard treats them specially.
func isPrimitive(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
