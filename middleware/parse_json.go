package middleware

import (
	"encoding/json"
	"net/http"
)

// ParseJSON decodes the exchange body as JSON into the generic shapes
// encoding/json produces for an untyped target: maps, slices, strings,
// float64s, bools, nil. The body is consumed and closed.
//
// A malformed body surfaces as the decoder's own error, unwrapped. An already
// failed exchange passes through untouched, body left alone. ParseJSON does
// not care how the exchange went status-wise; put CheckStatus in front if you
// do.
func ParseJSON(resp *http.Response, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var v any
	if derr := json.NewDecoder(resp.Body).Decode(&v); derr != nil {
		return nil, derr
	}
	return v, nil
}

// DecodeJSON is ParseJSON for callers that know the shape: it decodes the
// body into a value of type T. Same body ownership and failure rules.
func DecodeJSON[T any](resp *http.Response, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	defer resp.Body.Close()

	if derr := json.NewDecoder(resp.Body).Decode(&v); derr != nil {
		var zero T
		return zero, derr
	}
	return v, nil
}
