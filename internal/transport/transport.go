// Package transport sends payloads to the collector. Sending is fire-and-forget: a RequestFunc
// never returns an error and never retries; failures are logged and counted.
package transport

import (
	"net/http"
)

type Options struct {
	Method  string
	Headers http.Header
	Body    string
}

// RequestFunc performs a request to url.
type RequestFunc func(url string, opts Options)

// Discard drops every request.
func Discard(string, Options) {}
