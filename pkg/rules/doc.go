// Package rules provides ready-made field validators for the form engine.
//
// Every helper returns a form.Validator, so rules plug directly into
// Form.Mount. Rules validate a single field's value and never inspect the
// whole-form snapshot; cross-field checks remain caller-supplied closures.
//
// # Usage
//
//	f.Mount("name", "", rules.All(rules.Required(), rules.MinLen(6)), false)
//	f.Mount("email", "", rules.Optional(rules.ValidEmail()), false)
//	f.Mount("age", 0, rules.Min(18), false)
//
// Combinators compose rules: All short-circuits on the first failure,
// Optional skips empty values, and WithMessage overrides the failure text.
//
// # Error Handling
//
// Rules fail with the sentinel errors declared in errors.go or with
// formatted one-off errors for parameterized bounds. The engine normalizes
// either into the FieldError it stores, so the distinction only matters to
// callers running rules directly.
package rules
