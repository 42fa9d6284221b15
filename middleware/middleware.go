// Package middleware provides small composable helpers for processing the
// outcome of an HTTP exchange. An outcome is the ordinary (*http.Response,
// error) pair any net/http-compatible transport returns, so helpers nest
// directly over a call:
//
//	body, err := middleware.ParseJSON(middleware.CheckStatus(http.Get(url)))
//
// A middleware is any function transforming one outcome into another. The
// contract is documented, not enforced:
//
//  1. It must produce an outcome for every input outcome; never discard the
//     incoming pair without returning a new one.
//  2. If it observes a non-nil error and does not fully recover from it, it
//     must return a non-nil error, so callers downstream can still tell
//     success from failure.
//
// The helpers here follow the contract and recover from nothing: transport
// failures pass through CheckStatus and ParseJSON untouched, and neither
// function logs, retries, or wraps. Richer behavior belongs in caller-supplied
// middleware layered around them.
package middleware

import "net/http"

// Middleware transforms the outcome of one HTTP exchange into another.
// CheckStatus conforms; ParseJSON does not (it changes the result type) but
// obeys the same two obligations.
type Middleware func(*http.Response, error) (*http.Response, error)

// Chain composes middleware into one. The first listed runs first, the way
// sequential calls would nest:
//
//	Chain(a, b)(resp, err) == b(a(resp, err))
func Chain(mws ...Middleware) Middleware {
	return func(resp *http.Response, err error) (*http.Response, error) {
		for _, mw := range mws {
			resp, err = mw(resp, err)
		}
		return resp, err
	}
}
