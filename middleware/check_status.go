package middleware

import (
	"net/http"

	"github.com/pwdeveloper/mad-spring-connect/apierr"
)

// CheckStatus gates an exchange on its status code. A 2xx response (inclusive
// [200, 299]) passes through untouched, the very same *http.Response. Anything
// else becomes an *apierr.ResponseError wrapping that response.
//
// CheckStatus never reads or closes the body: on success the next step in the
// chain consumes it, on failure it travels inside the error for the caller to
// inspect and close.
func CheckStatus(resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return resp, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}
	return nil, apierr.New(resp)
}
