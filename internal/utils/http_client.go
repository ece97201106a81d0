package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-login-bridge"

// HTTPClient wraps resty.Client so application-wide defaults live in one
// place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A zero timeout leaves
// requests unbounded apart from their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
