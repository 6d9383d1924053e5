package binder

import (
	"fmt"
	"mime"
	"net/http"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
)

// MediaType returns the request media type without parameters, lower-cased.
// It returns "" when the header is absent and ErrMalformedContentType when the
// header cannot be parsed.
func MediaType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedContentType, ct)
	}
	return mt, nil
}
