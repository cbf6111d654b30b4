package form

import "context"

// Field is a handle bound to one mounted field. It is the read/write surface
// handed to field-level consumers: current value, error, and dirty state,
// plus the bound operations. A handle stays usable after its field unmounts;
// reads simply report zero values then.
type Field struct {
	form *Form
	name string
}

// Name returns the field name the handle is bound to.
func (fl *Field) Name() string {
	return fl.name
}

// Value returns the field's current value, or nil if the field is unknown.
func (fl *Field) Value() any {
	return fl.form.State().Values[fl.name]
}

// Err returns the field's current validation error, or nil.
func (fl *Field) Err() *FieldError {
	return fl.form.State().Errors.Get(fl.name)
}

// Dirty reports whether the field's value changed since it last became pristine.
func (fl *Field) Dirty() bool {
	return fl.form.State().DirtyFields[fl.name]
}

// Pristine is the complement of Dirty.
func (fl *Field) Pristine() bool {
	return !fl.Dirty()
}

// Set writes the field's value. See Form.SetValue.
func (fl *Field) Set(value any, opts ...SetOption) {
	fl.form.SetValue(fl.name, value, opts...)
}

// Validate runs the field's registered validator against the current values
// snapshot, without touching shared state. Suited for onBlur-style checks.
func (fl *Field) Validate(ctx context.Context) *FieldError {
	return fl.form.ValidateField(ctx, fl.name)
}

// MakePristine clears the whole form's dirty tracking. This is the same
// bound operation the form root exposes; a field consumer calling it after a
// successful save resets the aggregate, not just its own entry.
func (fl *Field) MakePristine() {
	fl.form.MakePristine()
}

// Unmount removes the field from the form. See Form.Unmount.
func (fl *Field) Unmount() {
	fl.form.Unmount(fl.name)
}
