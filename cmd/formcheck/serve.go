package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcheck/pkg/api"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation API",
		Long: "Run the HTTP validation API.\n\n" +
			"Configuration is read from the environment (and an optional .env file):\n" +
			"APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT, HTTP_ADDR, HTTP_*_TIMEOUT,\n" +
			"HTTP_MAX_BODY_BYTES, SIGNUP_PASSWORD_MIN_LENGTH, SIGNUP_OTP_LENGTH.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAppConfig(envFiles...)
			if err != nil {
				return err
			}

			log, err := cfg.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			handler := api.New(
				api.WithLogger(log.With(logger.Component("api"))),
				api.WithSignupOptions(cfg.signupOptions()),
				api.WithMaxBodyBytes(cfg.MaxBodyBytes),
			)
			srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("httpserver"))))

			if err := srv.Run(cmd.Context(), handler.Router()); err != nil {
				log.ErrorContext(cmd.Context(), "server stopped with error", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Additional .env files to load")

	return cmd
}
