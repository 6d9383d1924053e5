package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	DefaultPasswordMinLength       = 6
	DefaultStrongPasswordMinLength = 8
)

const (
	MsgPasswordEmpty          = "Password field cannot be empty."
	MsgPasswordNoSpecial      = "Password must contain at least one special character."
	MsgPasswordNoDigit        = "Password must contain at least one digit."
	MsgPasswordNoUppercase    = "Password must contain at least one uppercase letter."
	MsgPasswordNoLowercase    = "Password must contain at least one lowercase letter."
	MsgConfirmPasswordEmpty   = "Confirm password field cannot be empty."
	MsgPasswordsDoNotMatch    = "Passwords do not match."
	msgPasswordTooShortFormat = "Password must be at least %d characters long."
)

var (
	// Classes are ASCII-only on purpose: anything outside [A-Za-z0-9] counts as special,
	// including whitespace and non-ASCII letters.
	specialCharRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
)

// PasswordTooShortMessage returns the length failure message for the given minimum.
func PasswordTooShortMessage(minLength int) string {
	return fmt.Sprintf(msgPasswordTooShortFormat, minLength)
}

// Password validates a password with the default minimum length of 6.
func Password(password string) Result {
	return PasswordMinLen(password, DefaultPasswordMinLength)
}

// PasswordMinLen checks, in order: emptiness, then length against minLength.
// A minLength of 0 means no minimum; a negative one falls back to
// DefaultPasswordMinLength.
func PasswordMinLen(password string, minLength int) Result {
	if minLength < 0 {
		minLength = DefaultPasswordMinLength
	}

	switch {
	case password == "":
		return Invalid(MsgPasswordEmpty)
	case utf8.RuneCountInString(password) < minLength:
		return Invalid(PasswordTooShortMessage(minLength))
	default:
		return Valid()
	}
}

// StrongPassword validates a password with the default minimum length of 8.
func StrongPassword(password string) Result {
	return StrongPasswordMinLen(password, DefaultStrongPasswordMinLength)
}

// StrongPasswordMinLen reports the first failing check of:
// empty, too short, no special character, no digit, no uppercase, no lowercase.
// A negative minLength falls back to DefaultStrongPasswordMinLength.
func StrongPasswordMinLen(password string, minLength int) Result {
	if minLength < 0 {
		minLength = DefaultStrongPasswordMinLength
	}

	switch {
	case password == "":
		return Invalid(MsgPasswordEmpty)
	case utf8.RuneCountInString(password) < minLength:
		return Invalid(PasswordTooShortMessage(minLength))
	case !specialCharRegex.MatchString(password):
		return Invalid(MsgPasswordNoSpecial)
	case !digitRegex.MatchString(password):
		return Invalid(MsgPasswordNoDigit)
	case !uppercaseRegex.MatchString(password):
		return Invalid(MsgPasswordNoUppercase)
	case !lowercaseRegex.MatchString(password):
		return Invalid(MsgPasswordNoLowercase)
	default:
		return Valid()
	}
}

// PasswordsMatch validates the confirmation field against password.
// Comparison is exact and case-sensitive; an empty confirmation wins over a mismatch.
func PasswordsMatch(password, confirmPassword string) Result {
	switch {
	case confirmPassword == "":
		return Invalid(MsgConfirmPasswordEmpty)
	case password != confirmPassword:
		return Invalid(MsgPasswordsDoNotMatch)
	default:
		return Valid()
	}
}
