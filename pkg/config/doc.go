// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for optional .env files,
// github.com/caarlos0/env/v11 for parsing into tagged structs and
// github.com/go-playground/validator/v10 for checking the parsed values:
//
//	type AppConfig struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig) or config.ErrInvalidConfig
//	}
//
// Each configuration type is parsed once and cached for the lifetime of the
// process. ResetCache clears the cache, which is mostly useful in tests.
package config
