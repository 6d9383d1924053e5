package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const DefaultOTPLength = 6

const (
	MsgEmailEmpty      = "Email field cannot be empty."
	MsgEmailInvalid    = "Invalid email address."
	MsgOTPEmpty        = "OTP field cannot be empty."
	msgOTPLengthFormat = "OTP must be %d digits long."
)

// emailRegex follows the practical address grammar used by Android's Patterns.EMAIL_ADDRESS:
// a 1-256 char local part of [A-Za-z0-9+._%-], then a domain made of labels that start
// with an alphanumeric, with at least one dot. Quoted local parts, IP literals and
// non-ASCII addresses are rejected.
var emailRegex = regexp.MustCompile(
	`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`,
)

// Email checks that email is non-empty and shaped like an address.
func Email(email string) Result {
	switch {
	case email == "":
		return Invalid(MsgEmailEmpty)
	case !emailRegex.MatchString(email):
		return Invalid(MsgEmailInvalid)
	default:
		return Valid()
	}
}

// OTPLengthMessage returns the length failure message for the given code length.
func OTPLengthMessage(length int) string {
	return fmt.Sprintf(msgOTPLengthFormat, length)
}

// OTP validates a one-time code of DefaultOTPLength characters.
func OTP(otp string) Result {
	return OTPLen(otp, DefaultOTPLength)
}

// OTPLen checks that otp is non-empty and exactly length characters long.
// Characters are not required to be digits.
// A negative length falls back to DefaultOTPLength. A length of 0 is taken
// literally, so every non-empty code fails it.
func OTPLen(otp string, length int) Result {
	if length < 0 {
		length = DefaultOTPLength
	}

	switch {
	case otp == "":
		return Invalid(MsgOTPEmpty)
	case utf8.RuneCountInString(otp) != length:
		return Invalid(OTPLengthMessage(length))
	default:
		return Valid()
	}
}
