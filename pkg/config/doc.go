// Package config provides a type-safe, generic way to load configuration from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file (when present) is loaded once per process, then the
// environment is parsed into any Go struct based on its `env` field tags.
//
// # Usage
//
//	type LogConfig struct {
//	    Level  string `env:"FORMSTATE_LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"FORMSTATE_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrNilPointer    – nil pointer passed to Load/MustLoad.
package config
