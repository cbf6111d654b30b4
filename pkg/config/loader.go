package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from the process
// environment, parsing fields based on their `env` tags.
//
// The default .env file is loaded once per process before the first parse;
// a missing .env file is not an error.
//
// Example:
//
//	type LogConfig struct {
//		Level  string `env:"FORMSTATE_LOG_LEVEL" envDefault:"info"`
//		Format string `env:"FORMSTATE_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
