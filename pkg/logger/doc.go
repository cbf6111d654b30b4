// Package logger provides a small slog factory and attribute helpers shared
// by the formstate packages.
//
// New builds a *slog.Logger from functional options (level, text/json format,
// output writer, static attributes). NewFromEnv reads FORMSTATE_LOG_LEVEL and
// FORMSTATE_LOG_FORMAT through the config package, falling back to quiet
// text/info defaults on any misconfiguration - a library must never prevent
// its host process from starting because of a logging knob.
//
// The attr helpers (Error, FormID, FieldName, ErrCount) keep attribute keys
// consistent across the codebase.
package logger
