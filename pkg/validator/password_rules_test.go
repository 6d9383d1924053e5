package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		password  string
		minLength int
		want      validator.Result
	}{
		{"empty", "", 6, validator.Invalid("Password field cannot be empty.")},
		{"empty wins over length", "", 100, validator.Invalid("Password field cannot be empty.")},
		{"too short", "abc", 6, validator.Invalid("Password must be at least 6 characters long.")},
		{"exact length", "abcdef", 6, validator.Valid()},
		{"longer than minimum", "abcdefghij", 6, validator.Valid()},
		{"custom minimum", "abc", 3, validator.Valid()},
		{"custom minimum too short", "abc", 10, validator.Invalid("Password must be at least 10 characters long.")},
		{"zero minimum means no minimum", "a", 0, validator.Valid()},
		{"zero minimum still rejects empty", "", 0, validator.Invalid("Password field cannot be empty.")},
		{"negative minimum uses default", "abcdef", -1, validator.Valid()},
		{"negative minimum too short for default", "abc", -1, validator.Invalid("Password must be at least 6 characters long.")},
		{"multibyte counted by code point", "日本語日本語", 6, validator.Valid()},
		{"multibyte too short", "日本", 6, validator.Invalid("Password must be at least 6 characters long.")},
		{"whitespace counts", "      ", 6, validator.Valid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.PasswordMinLen(tt.password, tt.minLength))
		})
	}

	t.Run("default minimum", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Invalid("Password must be at least 6 characters long."), validator.Password("abc"))
		assert.Equal(t, validator.Valid(), validator.Password("abcdef"))
	})
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     validator.Result
	}{
		{"valid", "Abcdefg1!", validator.Valid()},
		{"valid with space as special", "Abcdefg1 ", validator.Valid()},
		{"valid with non-ascii letter as special", "Abcdéfg1", validator.Valid()},
		{"empty", "", validator.Invalid(validator.MsgPasswordEmpty)},
		{"too short", "Ab1!", validator.Invalid("Password must be at least 8 characters long.")},
		{"special checked before others", "abcdefgh", validator.Invalid(validator.MsgPasswordNoSpecial)},
		{"missing digit", "Abcdefg!", validator.Invalid(validator.MsgPasswordNoDigit)},
		{"digit checked before case", "abcdefg!", validator.Invalid(validator.MsgPasswordNoDigit)},
		{"missing uppercase", "abcdefg1!", validator.Invalid(validator.MsgPasswordNoUppercase)},
		{"missing lowercase", "ABCDEFG1!", validator.Invalid(validator.MsgPasswordNoLowercase)},
		{"non-ascii digit is not a digit", "Abcdefg١!", validator.Invalid(validator.MsgPasswordNoDigit)},
		{"non-ascii uppercase is not uppercase", "Ébcdefg1!", validator.Invalid(validator.MsgPasswordNoUppercase)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.StrongPassword(tt.password))
		})
	}

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Password must contain at least one special character.", validator.StrongPassword("abcdefgh").ErrorMessage())
		assert.Equal(t, "Password must contain at least one digit.", validator.StrongPassword("Abcdefg!").ErrorMessage())
		assert.Equal(t, "Password must contain at least one uppercase letter.", validator.StrongPassword("abcdefg1!").ErrorMessage())
		assert.Equal(t, "Password must contain at least one lowercase letter.", validator.StrongPassword("ABCDEFG1!").ErrorMessage())
	})

	t.Run("custom minimum", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Valid(), validator.StrongPasswordMinLen("Ab1!", 4))
		assert.Equal(t, validator.Invalid("Password must be at least 12 characters long."), validator.StrongPasswordMinLen("Abcdefg1!", 12))
	})

	t.Run("zero minimum skips only the length check", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Valid(), validator.StrongPasswordMinLen("Ab1!", 0))
		assert.Equal(t, validator.Invalid(validator.MsgPasswordNoSpecial), validator.StrongPasswordMinLen("Ab1", 0))
		assert.Equal(t, validator.Invalid(validator.MsgPasswordEmpty), validator.StrongPasswordMinLen("", 0))
	})

	t.Run("negative minimum uses default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Invalid("Password must be at least 8 characters long."), validator.StrongPasswordMinLen("Ab1!", -1))
	})
}

func TestPasswordsMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Valid(), validator.PasswordsMatch("x", "x"))
	assert.Equal(t, validator.Invalid("Passwords do not match."), validator.PasswordsMatch("x", "y"))
	assert.Equal(t, validator.Invalid("Confirm password field cannot be empty."), validator.PasswordsMatch("x", ""))

	t.Run("comparison is case sensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Invalid(validator.MsgPasswordsDoNotMatch), validator.PasswordsMatch("Secret", "secret"))
	})

	t.Run("empty confirmation wins even when password is empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Invalid(validator.MsgConfirmPasswordEmpty), validator.PasswordsMatch("", ""))
	})

	t.Run("empty password with confirmation mismatches", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.Invalid(validator.MsgPasswordsDoNotMatch), validator.PasswordsMatch("", "x"))
	})
}
