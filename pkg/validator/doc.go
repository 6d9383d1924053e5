// Package validator provides pure, stateless validation rules for common form
// fields: email, password, strong password, password confirmation, display name
// and one-time code.
//
// Every rule takes the raw field input and returns a Result. A Result is either
// valid, carrying no message, or invalid, carrying exactly one human-readable
// reason. Rules never return errors and never panic: "invalid" is an ordinary
// outcome.
//
// # Evaluation order
//
// Each rule runs its checks in a fixed order and stops at the first failure.
// An empty password therefore reports "Password field cannot be empty." rather
// than the length message, and StrongPassword reports a missing special
// character before a missing digit, uppercase or lowercase letter.
//
// # Usage
//
//	res := validator.StrongPassword(input)
//	if !res.IsValid() {
//	    showFieldError("password", res.ErrorMessage())
//	}
//
// Callers validating a whole form can collect one message per field with Errors:
//
//	errs := validator.NewErrors()
//	errs.Check("email", validator.Email(email))
//	errs.Check("name", validator.Name(name))
//	if err := errs.Err(); err != nil {
//	    // errors.Is(err, validator.ErrValidationFailed) == true
//	}
//
// # Parameters
//
// Length parameters have defaults (DefaultPasswordMinLength,
// DefaultStrongPasswordMinLength, DefaultOTPLength). The *MinLen / *Len variants
// take an explicit value. Zero is a legal value and is used as given; a negative
// value is a caller bug and falls back to the default.
//
// Lengths are counted in Unicode code points, not bytes and not UTF-16 code
// units. A character outside the Basic Multilingual Plane such as an emoji
// counts once, where a UTF-16 length (Java or Kotlin String.length) would count
// it twice, so "😀😀😀" is three characters long here.
//
// # Concurrency
//
// The package holds no mutable state. All rules are safe for concurrent use.
package validator
