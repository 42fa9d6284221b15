package apierr

import (
	"errors"
	"net/http"
)

// ResponseError is the failure value produced when an exchange completed but
// the server answered outside the 2xx range. It carries the full response so
// callers can branch on the status code or read the error body themselves.
//
// The wrapped Response's body is left unread; whoever consumes the error owns
// it and should close it.
type ResponseError struct {
	Status   int            // HTTP status code, never in [200, 299]
	Message  string         // status line of the response
	Response *http.Response // the exchange that caused the failure
}

// New builds a ResponseError from a non-2xx response. The response is adopted
// as-is, body included.
func New(resp *http.Response) *ResponseError {
	return &ResponseError{
		Status:   resp.StatusCode,
		Message:  coalesce(resp.Status, http.StatusText(resp.StatusCode)),
		Response: resp,
	}
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// IsClientError reports whether the failure was a 4xx.
func (e *ResponseError) IsClientError() bool {
	return e.Status >= 400 && e.Status <= 499
}

// IsServerError reports whether the failure was a 5xx.
func (e *ResponseError) IsServerError() bool {
	return e.Status >= 500 && e.Status <= 599
}

// From unwraps a ResponseError out of err, if one is there. Callers use it to
// tell a status failure apart from transport and parse failures.
func From(err error) (*ResponseError, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
