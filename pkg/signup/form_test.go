package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/signup"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func validForm() signup.Form {
	return signup.Form{
		Email:           "jane@example.com",
		Password:        "Abcdefg1!",
		ConfirmPassword: "Abcdefg1!",
		Name:            "Jane",
		OTP:             "123456",
	}
}

func TestFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		errs := validForm().Validate()
		assert.True(t, errs.IsEmpty())
		assert.NoError(t, errs.Err())
	})

	t.Run("empty form reports every field once", func(t *testing.T) {
		t.Parallel()
		errs := signup.Form{}.Validate()

		assert.Equal(t, map[string]string{
			signup.FieldEmail:           validator.MsgEmailEmpty,
			signup.FieldPassword:        validator.MsgPasswordEmpty,
			signup.FieldConfirmPassword: validator.MsgConfirmPasswordEmpty,
			signup.FieldName:            validator.MsgNameEmpty,
			signup.FieldOTP:             validator.MsgOTPEmpty,
		}, errs.First())
		for _, field := range signup.Fields {
			assert.Len(t, errs[field], 1, field)
		}
	})

	t.Run("only failing fields are reported", func(t *testing.T) {
		t.Parallel()
		form := validForm()
		form.Password = "abcdefgh"
		form.ConfirmPassword = "abcdefgh"
		form.OTP = "12345"

		errs := form.Validate()
		assert.Equal(t, []string{signup.FieldOTP, signup.FieldPassword}, errs.Fields())
		assert.Equal(t, validator.MsgPasswordNoSpecial, errs.Get(signup.FieldPassword))
		assert.Equal(t, "OTP must be 6 digits long.", errs.Get(signup.FieldOTP))
		assert.ErrorIs(t, errs.Err(), validator.ErrValidationFailed)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		t.Parallel()
		form := validForm()
		form.ConfirmPassword = "Abcdefg1?"

		errs := form.Validate()
		assert.Equal(t, []string{signup.FieldConfirmPassword}, errs.Fields())
		assert.Equal(t, validator.MsgPasswordsDoNotMatch, errs.Get(signup.FieldConfirmPassword))
	})
}

func TestFormValidateWith(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Password = "Ab1!"
	form.ConfirmPassword = "Ab1!"
	form.OTP = "1234"

	assert.Equal(t, []string{signup.FieldOTP, signup.FieldPassword}, form.Validate().Fields())

	errs := form.ValidateWith(signup.Options{PasswordMinLength: 4, OTPLength: 4})
	assert.True(t, errs.IsEmpty())

	errs = form.ValidateWith(signup.Options{PasswordMinLength: 12, OTPLength: 8})
	assert.Equal(t, "Password must be at least 12 characters long.", errs.Get(signup.FieldPassword))
	assert.Equal(t, "OTP must be 8 digits long.", errs.Get(signup.FieldOTP))

	t.Run("zero options keep the defaults", func(t *testing.T) {
		t.Parallel()
		errs := form.ValidateWith(signup.Options{})
		assert.Equal(t, "Password must be at least 8 characters long.", errs.Get(signup.FieldPassword))
		assert.Equal(t, "OTP must be 6 digits long.", errs.Get(signup.FieldOTP))
	})
}

func TestFormResults(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Name = ""

	results := form.Results(signup.Options{})
	require.Len(t, results, len(signup.Fields))
	for _, field := range signup.Fields {
		if field == signup.FieldName {
			assert.Equal(t, validator.Invalid(validator.MsgNameEmpty), results[field])
			continue
		}
		assert.Equal(t, validator.Valid(), results[field], field)
	}
}
