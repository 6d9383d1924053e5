package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// RuleResponse is the body returned by POST /v1/rules/{rule}.
type RuleResponse struct {
	Rule   string           `json:"rule"`
	Result validator.Result `json:"result"`
}

// FormResponse is the body returned by form endpoints.
// Errors holds the first message of every invalid field.
type FormResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ErrorResponse wraps ErrorDetail for error bodies.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err as an ErrorResponse. Errors that are not HTTPError become 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternalServerError
	}

	msg := httpErr.Message
	if msg == "" {
		msg = http.StatusText(httpErr.Code)
	}
	writeJSON(w, httpErr.Code, ErrorResponse{Error: ErrorDetail{Code: httpErr.Key, Message: msg}})
}
