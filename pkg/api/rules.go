package api

import (
	"slices"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// RuleRequest is the JSON body accepted by POST /v1/rules/{rule}.
// Confirm is only read by passwords-match; MinLength by the password rules;
// Length by otp. An omitted or null length selects the rule default; 0 is used
// as given.
type RuleRequest struct {
	Value     string `json:"value"`
	Confirm   string `json:"confirm"`
	MinLength *int   `json:"min_length" validate:"omitempty,gte=0,lte=1024"`
	Length    *int   `json:"length" validate:"omitempty,gte=0,lte=1024"`
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Rule names accepted in the {rule} path segment.
const (
	RuleEmail          = "email"
	RulePassword       = "password"
	RuleStrongPassword = "strong-password"
	RulePasswordsMatch = "passwords-match"
	RuleName           = "name"
	RuleOTP            = "otp"
)

type ruleFunc func(RuleRequest) validator.Result

var ruleSet = map[string]ruleFunc{
	RuleEmail: func(r RuleRequest) validator.Result {
		return validator.Email(r.Value)
	},
	RulePassword: func(r RuleRequest) validator.Result {
		return validator.PasswordMinLen(r.Value, intOr(r.MinLength, validator.DefaultPasswordMinLength))
	},
	RuleStrongPassword: func(r RuleRequest) validator.Result {
		return validator.StrongPasswordMinLen(r.Value, intOr(r.MinLength, validator.DefaultStrongPasswordMinLength))
	},
	RulePasswordsMatch: func(r RuleRequest) validator.Result {
		return validator.PasswordsMatch(r.Value, r.Confirm)
	},
	RuleName: func(r RuleRequest) validator.Result {
		return validator.Name(r.Value)
	},
	RuleOTP: func(r RuleRequest) validator.Result {
		return validator.OTPLen(r.Value, intOr(r.Length, validator.DefaultOTPLength))
	},
}

// Rules returns the supported rule names, sorted.
func Rules() []string {
	names := make([]string, 0, len(ruleSet))
	for name := range ruleSet {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check runs the named rule. ok is false for unknown rule names.
func Check(rule string, req RuleRequest) (res validator.Result, ok bool) {
	fn, ok := ruleSet[rule]
	if !ok {
		return validator.Result{}, false
	}
	return fn(req), true
}
