package rules

import "errors"

var (
	// ErrRequired is returned when a required field is empty.
	ErrRequired = errors.New("field is required")

	// ErrNotString is returned when a string rule receives a non-string value.
	ErrNotString = errors.New("must be a string")

	// ErrNotNumeric is returned when a numeric rule receives a non-numeric value.
	ErrNotNumeric = errors.New("must be a number")

	// ErrInvalidEmail is returned when a value is not a valid email address.
	ErrInvalidEmail = errors.New("must be a valid email address")

	// ErrInvalidChoice is returned when a value is not among the allowed choices.
	ErrInvalidChoice = errors.New("must be one of the allowed values")
)
