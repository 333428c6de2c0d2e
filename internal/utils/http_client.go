package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client so all resty methods
// are available directly, while leaving room for application-specific
// behavior later.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh HTTPClient with its own connection pool and
// default configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
