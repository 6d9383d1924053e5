package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/api"
	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "check", "email", "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "check", "strong-password", "abcdefgh")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "invalid: Password must contain at least one special character.\n", out)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "otp", "1234", "--length", "4")
		assert.NoError(t, err)

		out, err := run(t, "", "check", "password", "abc", "--min-length", "8")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "invalid: Password must be at least 8 characters long.\n", out)
	})

	t.Run("zero lengths are taken literally", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "password", "a", "--min-length", "0")
		assert.NoError(t, err)

		out, err := run(t, "", "check", "otp", "a", "--length", "0")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "invalid: OTP must be 0 digits long.\n", out)
	})

	t.Run("unset flags use rule defaults", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "check", "password", "abc")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "invalid: Password must be at least 6 characters long.\n", out)
	})

	t.Run("negative length flag", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "otp", "1", "--length=-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidInput)
	})

	t.Run("confirmation argument", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "passwords-match", "x", "x")
		assert.NoError(t, err)

		out, err := run(t, "", "check", "passwords-match", "x")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t, "invalid: Confirm password field cannot be empty.\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "check", "otp", "12345", "--json")
		assert.ErrorIs(t, err, errInvalidInput)

		var resp api.RuleResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "otp", resp.Rule)
		assert.Equal(t, validator.Invalid("OTP must be 6 digits long."), resp.Result)
	})

	t.Run("unknown rule", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "zipcode", "123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidInput)
		assert.Contains(t, err.Error(), `unknown rule "zipcode"`)
	})

	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "check", "email")
		assert.Error(t, err)
	})
}

func TestFormCommand(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "form", "testdata/valid.yaml")
		require.NoError(t, err)
		assert.Equal(t, "email: ok\npassword: ok\nconfirm_password: ok\nname: ok\notp: ok\n", out)
	})

	t.Run("invalid file with options", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "", "form", "testdata/invalid.yaml")
		assert.ErrorIs(t, err, errInvalidInput)
		assert.Equal(t,
			"email: Invalid email address.\n"+
				"password: Password must contain at least one special character.\n"+
				"confirm_password: ok\n"+
				"name: Name field cannot be empty.\n"+
				"otp: ok\n",
			out,
		)
	})

	t.Run("stdin as json", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "email: jane@example.com\n", "form", "-", "--json")
		assert.ErrorIs(t, err, errInvalidInput)

		var resp api.FormResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.False(t, resp.Valid)
		assert.NotContains(t, resp.Errors, "email")
		assert.Equal(t, validator.MsgPasswordEmpty, resp.Errors["password"])
		assert.Equal(t, validator.MsgOTPEmpty, resp.Errors["otp"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "form", "testdata/missing.yaml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidInput)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "emial: jane@example.com\n", "form", "-")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidInput)
		assert.Contains(t, err.Error(), "emial")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "email: [unclosed\n", "form", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing form")
	})
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "formcheck dev")
}

func TestLoadAppConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		cfg, err := loadAppConfig()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, 8, cfg.PasswordMinLength)
		assert.Equal(t, 6, cfg.OTPLength)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
	})

	t.Run("invalid log level", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_LEVEL", "loud")
		_, err := loadAppConfig()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("logger honours overrides", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_FORMAT", "text")
		cfg, err := loadAppConfig()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log, err := cfg.newLogger(buf)
		require.NoError(t, err)
		log.Info("hello")
		assert.Contains(t, buf.String(), "env=production")
		assert.Contains(t, buf.String(), "service=formcheck")
	})
}

func TestServeCommand(t *testing.T) {
	config.ResetCache()
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("LOG_FORMAT", "json")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	cmd := newRootCmd()
	logs := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(logs)
	cmd.SetArgs([]string{"serve"})

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, logs.String(), "http server started")
	assert.Contains(t, logs.String(), "http server stopped")
}
