package sortly

import (
	"net/http"
	"strconv"
)

// Response headers carrying request-quota bookkeeping.
const (
	headerRateLimitMax       = "Sortly-Rate-Limit-Max"
	headerRateLimitRemaining = "Sortly-Rate-Limit-Remaining"
	headerRateLimitReset     = "Sortly-Rate-Limit-Reset"
	headerRequestID          = "X-Request-Id"
)

// RateLimit mirrors the request-quota headers of the most recent API
// response. It is informational only; the client never gates requests
// on it.
type RateLimit struct {
	// Max is the total number of requests allowed in the current window.
	Max int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is the number of seconds until the window resets.
	Reset int
	// RequestID is the correlation id of the most recent response.
	RequestID string
}

// RateLimit returns a snapshot of the rate-limit state recorded from the
// most recent response. Safe for concurrent use.
func (c *Client) RateLimit() RateLimit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// recordRateLimit updates the stored rate-limit state from response
// headers. A header absent on this particular response keeps the prior
// recorded value.
func (c *Client) recordRateLimit(h http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := headerInt(h, headerRateLimitMax); ok {
		c.rate.Max = v
	}
	if v, ok := headerInt(h, headerRateLimitRemaining); ok {
		c.rate.Remaining = v
	}
	if v, ok := headerInt(h, headerRateLimitReset); ok {
		c.rate.Reset = v
	}
	if v := h.Get(headerRequestID); v != "" {
		c.rate.RequestID = v
	}
}

func headerInt(h http.Header, key string) (int, bool) {
	raw := h.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
