package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const defaultInvalidMessage = "validation failed"

// Result is the outcome of a single rule invocation.
// A valid Result never carries a message; an invalid one always does.
type Result struct {
	valid   bool
	message string
}

// Valid returns a passing Result.
func Valid() Result {
	return Result{valid: true}
}

// Invalid returns a failing Result with the given message.
// An empty message is replaced with a generic one.
func Invalid(message string) Result {
	if message == "" {
		message = defaultInvalidMessage
	}
	return Result{message: message}
}

func (r Result) IsValid() bool {
	return r.valid
}

// ErrorMessage returns the rejection reason, or an empty string for valid results.
func (r Result) ErrorMessage() string {
	return r.message
}

// Err converts the Result into an error bound to field. Returns nil when valid.
func (r Result) Err(field string) error {
	if r.valid {
		return nil
	}
	return &FieldError{Field: field, Message: r.message}
}

func (r Result) String() string {
	if r.valid {
		return "valid"
	}
	return "invalid: " + r.message
}

type resultJSON struct {
	Valid        bool   `json:"valid"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{Valid: r.valid, ErrorMessage: r.message})
}

// UnmarshalJSON decodes a Result, dropping any message sent with a valid result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Valid {
		*r = Valid()
		return nil
	}
	*r = Invalid(raw.ErrorMessage)
	return nil
}

// FieldError is a failing Result attached to a named field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// Errors collects rejection messages keyed by field.
// It's based on url.Values to reuse its string slice handling.
type Errors url.Values

func NewErrors() Errors {
	return make(Errors)
}

// Check records the message of an invalid result under field and reports whether r was valid.
func (e Errors) Check(field string, r Result) bool {
	if r.valid {
		return true
	}
	e.Add(field, r.message)
	return false
}

func (e Errors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e Errors) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the names of all fields with errors, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e.Fields()) == 0
}

// First flattens the collection to the first message per field.
func (e Errors) First() map[string]string {
	out := make(map[string]string, len(e))
	for _, field := range e.Fields() {
		out[field] = e.Get(field)
	}
	return out
}

func (e Errors) Error() string {
	if e.IsEmpty() {
		return defaultInvalidMessage
	}

	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}
	return defaultInvalidMessage + ": " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Err returns e as an error, or nil when nothing was recorded.
func (e Errors) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
