package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// clientUserAgent identifies requests made by the bundled API client.
const clientUserAgent = "go-payment-system-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that asks for JSON and gives up on a request
// after timeout. A non-positive timeout leaves the request unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", clientUserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
