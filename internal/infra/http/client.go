package http

import (
	"net/http"
	"time"
)

// NewClient returns the HTTP client shared by every Shopify call.
// A zero timeout leaves requests bounded only by the transport defaults.
func NewClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{Timeout: timeout}
}
