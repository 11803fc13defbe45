package sortly

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		userAgent: defaultUserAgent,
	}
}

// WithBaseURL overrides the production API endpoint. Useful for testing
// against a mock server or a regional deployment.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout passed to the HTTP transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom HTTP client, replacing the default
// transport and any timeout configured via WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// requestOptions holds per-request overrides.
type requestOptions struct {
	headers map[string]string
}

// WithRequestHeader adds one header to a single request. Caller-supplied
// headers are merged over the default set (Authorization, User-Agent,
// Content-Type); a key matching a default replaces that default.
func WithRequestHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithRequestHeaders adds several headers to a single request, with the
// same merge semantics as WithRequestHeader.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}
