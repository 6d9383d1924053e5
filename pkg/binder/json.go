package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON creates a strict JSON binder. Unknown fields, an empty body and data
// after the first JSON value are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, err := MediaType(r)
		if err != nil {
			return err
		}
		if mt != "" && mt != MIMEApplicationJSON {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, MIMEApplicationJSON)
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		switch err := dec.Decode(&extra); {
		case errors.Is(err, io.EOF):
			return nil
		case err == nil:
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		default:
			return fmt.Errorf("%w: unexpected data after JSON value: %w", ErrFailedToParseJSON, err)
		}
	}
}
