package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/requestid"
	"github.com/dmitrymomot/formcheck/pkg/signup"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production dev stage prod"`
	Name      string `env:"APP_NAME" envDefault:"formcheck" validate:"required"`
	LogLevel  string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`

	PasswordMinLength int   `env:"SIGNUP_PASSWORD_MIN_LENGTH" envDefault:"8" validate:"gte=1,lte=1024"`
	OTPLength         int   `env:"SIGNUP_OTP_LENGTH" envDefault:"6" validate:"gte=1,lte=1024"`
	MaxBodyBytes      int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576" validate:"gt=0"`

	HTTP httpserver.Config
}

func loadAppConfig(envFiles ...string) (appConfig, error) {
	var cfg appConfig
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) signupOptions() signup.Options {
	return signup.Options{PasswordMinLength: c.PasswordMinLength, OTPLength: c.OTPLength}
}

// newLogger builds the service logger. Explicit LOG_LEVEL / LOG_FORMAT override
// the environment defaults.
func (c appConfig) newLogger(w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(c.Env, c.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if c.LogLevel != "" {
		lvl, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if c.LogFormat != "" {
		f, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}

	return logger.New(opts...), nil
}
