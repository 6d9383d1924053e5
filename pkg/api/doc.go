// Package api exposes the validation rules over HTTP for collaborators that
// are not written in Go, such as a browser front end.
//
// Routes:
//
//	GET  /health              liveness probe
//	POST /v1/rules/{rule}     run one rule, JSON body {"value", "confirm", "min_length", "length"}
//	POST /v1/forms/signup     validate the signup form (JSON or urlencoded)
//
// Invalid field input is not an HTTP error: it is reported with status 200
// and "valid": false. Only malformed requests get a 4xx status.
package api
