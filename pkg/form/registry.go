package form

// fieldEntry is a registry record for one mounted field. An entry exists
// exactly while the field is mounted, even when it carries no validator.
// The registered initial value is kept so Reset can re-seed the field.
type fieldEntry struct {
	validator Validator
	initial   any
}

// validatorsFor resolves the registered validator for each of the given
// fields. Must be called with the form lock held. Fields without a registry
// entry (bulk-set but never mounted) resolve to nil.
func (f *Form) validatorsFor(fields Values) map[string]Validator {
	validators := make(map[string]Validator, len(fields))
	for field := range fields {
		if entry, ok := f.registry[field]; ok {
			validators[field] = entry.validator
		}
	}
	return validators
}
