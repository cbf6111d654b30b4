package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form instance identifier under the key "form_id".
func FormID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form_id", id)
}

// FieldName records a form field name under the key "field".
func FieldName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// ErrCount records the number of field errors under the key "error_count".
func ErrCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}
