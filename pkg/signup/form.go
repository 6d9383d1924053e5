// Package signup validates the five-field registration form: email, password,
// password confirmation, display name and one-time code.
//
// Each field is checked independently with its rule from pkg/validator, so an
// invalid form reports exactly one message for every failing field and nothing
// for the fields that pass.
package signup

import "github.com/dmitrymomot/formcheck/pkg/validator"

// Field keys used in Errors.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldName            = "name"
	FieldOTP             = "otp"
)

// Form holds the raw field input. Values are validated exactly as given.
type Form struct {
	Email           string `json:"email" form:"email" yaml:"email"`
	Password        string `json:"password" form:"password" yaml:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" yaml:"confirm_password"`
	Name            string `json:"name" form:"name" yaml:"name"`
	OTP             string `json:"otp" form:"otp" yaml:"otp"`
}

// Options overrides the rule parameters. Zero values keep the rule defaults,
// so a form cannot be configured to drop the password minimum.
type Options struct {
	PasswordMinLength int `yaml:"password_min_length"`
	OTPLength         int `yaml:"otp_length"`
}

func (o Options) passwordMinLength() int {
	if o.PasswordMinLength > 0 {
		return o.PasswordMinLength
	}
	return validator.DefaultStrongPasswordMinLength
}

func (o Options) otpLength() int {
	if o.OTPLength > 0 {
		return o.OTPLength
	}
	return validator.DefaultOTPLength
}

// Validate checks the form with default parameters.
func (f Form) Validate() validator.Errors {
	return f.ValidateWith(Options{})
}

// Fields lists the form fields in display order.
var Fields = []string{FieldEmail, FieldPassword, FieldConfirmPassword, FieldName, FieldOTP}

// ValidateWith checks every field and returns the collected messages.
// The returned Errors is empty when the form is valid.
func (f Form) ValidateWith(opts Options) validator.Errors {
	errs := validator.NewErrors()
	results := f.Results(opts)
	for _, field := range Fields {
		errs.Check(field, results[field])
	}
	return errs
}

// Results returns the outcome of every field, valid ones included.
func (f Form) Results(opts Options) map[string]validator.Result {
	return map[string]validator.Result{
		FieldEmail:           validator.Email(f.Email),
		FieldPassword:        validator.StrongPasswordMinLen(f.Password, opts.passwordMinLength()),
		FieldConfirmPassword: validator.PasswordsMatch(f.Password, f.ConfirmPassword),
		FieldName:            validator.Name(f.Name),
		FieldOTP:             validator.OTPLen(f.OTP, opts.otpLength()),
	}
}
