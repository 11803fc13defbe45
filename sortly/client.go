package sortly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Sortly API endpoint.
const DefaultBaseURL = "https://api.sortly.co/api/v1"

const defaultUserAgent = "sortly-go-client"

// Client represents a Sortly API client. All configuration is fixed at
// construction; only the rate-limit snapshot mutates afterwards.
type Client struct {
	baseURL    string
	apiToken   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	mu   sync.Mutex
	rate RateLimit
}

// NewClient creates a new Sortly client.
func NewClient(apiToken string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("sortly API token is required")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiToken:   apiToken,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// do builds and issues exactly one authenticated request and classifies
// the outcome. path is the resource path relative to the base URL. The
// query is omitted entirely when empty. A non-nil payload is serialized
// as a JSON body.
//
// There is no internal retry: a 429 or 5xx surfaces immediately and the
// caller decides whether and when to try again.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, opts ...RequestOption) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &ValidationError{Field: "method", Message: fmt.Sprintf("unsupported HTTP method %q", method)}
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &ValidationError{Field: "payload", Message: fmt.Sprintf("cannot serialize request body: %v", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, &UnclassifiedError{Message: "failed to create request", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var reqOpts requestOptions
	for _, opt := range opts {
		opt(&reqOpts)
	}
	// Merge semantics: caller headers override same-named defaults.
	for k, v := range reqOpts.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Sortly API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnclassifiedError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	return c.classify(method, requestURL, resp)
}
