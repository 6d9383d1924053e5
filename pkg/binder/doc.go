// Package binder decodes HTTP request bodies into structs.
//
// Binding is strict: a key the target struct does not declare is an error, and
// so is anything after the first JSON value. A typo in a field name therefore
// fails the request instead of leaving the field empty.
//
// Values are stored exactly as sent. Nothing is trimmed or normalised, because
// whitespace and letter case are significant to the rules that read them.
//
// # Binders
//
//   - JSON(): application/json bodies (a missing Content-Type is read as JSON)
//   - Form(): application/x-www-form-urlencoded bodies, matched by `form` tags
//
// Both return a func(r *http.Request, v any) error:
//
//	var form signup.Form
//	if err := binder.Form()(r, &form); err != nil {
//	    // errors.Is(err, binder.ErrFailedToParseForm)
//	}
//
// Size limits are left to middleware such as chi's RequestSize. Read errors
// are wrapped, so errors.As still finds *http.MaxBytesError.
package binder
