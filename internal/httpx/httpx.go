// Package httpx carries the HTTP plumbing shared by the two service clients:
// a transport that injects the service token and a typed error for non-2xx
// responses.
package httpx

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError reports a non-2xx response, keeping the status and a capped
// copy of the body for log context.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

const maxErrBody = 4 << 10

// CheckResponse returns a *StatusError when the response status is outside
// the 2xx range. On error the body is read for context; closing it stays
// with the caller.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

// tokenTransport adds "Authorization: Token <token>" to every request, the
// header scheme both GitHub and pretix accept.
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be modified in place.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Token "+t.token)
	return t.base.RoundTrip(clone)
}

// NewClient builds an *http.Client that authenticates every request with the
// given token. An empty token yields an unauthenticated client. A zero
// timeout means no timeout.
func NewClient(token string, timeout time.Duration) *http.Client {
	c := &http.Client{Timeout: timeout}
	if token != "" {
		c.Transport = &tokenTransport{token: token, base: http.DefaultTransport}
	}
	return c
}
