package form

import "maps"

// Values maps field names to their current values. Values are opaque to the
// engine; the set of keys defines the set of known fields.
type Values map[string]any

func (v Values) clone() Values {
	return maps.Clone(v)
}

// Errors maps field names to their validation errors. Absence of a key means
// the field has no error.
type Errors map[string]*FieldError

// IsEmpty reports whether no field has an error.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the given field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the error for the given field, or nil.
func (e Errors) Get(field string) *FieldError {
	return e[field]
}

// Fields returns the names of all fields that currently have an error.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fields
}

func (e Errors) clone() Errors {
	return maps.Clone(e)
}

// State is a snapshot of the whole form: current values, per-field errors,
// dirty tracking, and aggregate status flags. Snapshots returned by the
// engine are defensive copies; mutating one never affects the form.
type State struct {
	Values      Values
	Errors      Errors
	DirtyFields map[string]bool

	// Valid and Invalid are complementary and authoritative only right
	// after a completed whole-form validation; a form that has never been
	// validated reports Valid.
	Valid   bool
	Invalid bool

	// Loading is true strictly while at least one whole-form validation
	// pass is in flight.
	Loading bool

	// Dirty and Pristine are complementary; Pristine holds exactly when
	// DirtyFields is empty.
	Dirty    bool
	Pristine bool

	// Submitted is true once a submission attempt completed and flips back
	// to false when any field value changes afterwards.
	Submitted bool
}

func newState() State {
	return State{
		Values:      Values{},
		Errors:      Errors{},
		DirtyFields: map[string]bool{},
		Valid:       true,
		Pristine:    true,
	}
}

func (s State) clone() State {
	c := s
	c.Values = s.Values.clone()
	c.Errors = s.Errors.clone()
	c.DirtyFields = maps.Clone(s.DirtyFields)
	return c
}

// recomputeDirty derives the aggregate Dirty/Pristine flags from DirtyFields.
func (s *State) recomputeDirty() {
	s.Dirty = len(s.DirtyFields) > 0
	s.Pristine = !s.Dirty
}
