package binder

import (
	"fmt"
	"net/http"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
//
// Fields bind by their `form` tag, or by the lower-cased field name when the
// tag is absent; `form:"-"` skips a field. Only body values are read, never
// the query string. Supported field types are string, the integer kinds, bool
// and pointers to them. A key without a matching field, or a key sent more
// than once, fails the bind.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, err := MediaType(r)
		if err != nil {
			return err
		}
		if mt != MIMEApplicationForm {
			if mt == "" {
				mt = "no content type"
			}
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, MIMEApplicationForm)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
