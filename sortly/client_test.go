package sortly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	client, err := NewClient("test-token", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing token", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("test-token", logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithBaseURL("http://localhost:9000/api/v1/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/api/v1", client.baseURL)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-token", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})
}

func TestDoDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Content-Type"), "GET without payload must not set Content-Type")
		assert.Empty(t, r.URL.RawQuery, "empty query must be omitted entirely")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.NoError(t, err)
}

func TestDoPayloadSetsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Widget", body["name"])
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": 1}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodPost, "/items", nil, map[string]string{"name": "Widget"})
	require.NoError(t, err)
}

func TestDoHeaderMerge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Caller override wins, untouched defaults survive.
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "abc", r.Header.Get("X-Custom"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil,
		WithRequestHeader("User-Agent", "custom-agent"),
		WithRequestHeaders(map[string]string{"X-Custom": "abc"}),
	)
	require.NoError(t, err)
}

func TestDoUnsupportedMethod(t *testing.T) {
	client := newTestClient(t, "http://localhost:9")
	_, err := client.do(context.Background(), http.MethodPatch, "/items", nil, nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestDoTransportError(t *testing.T) {
	// Reserved port, nothing listens here.
	client := newTestClient(t, "http://127.0.0.1:1")
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.Error(t, err)

	var unclassified *UnclassifiedError
	require.ErrorAs(t, err, &unclassified)
	assert.Zero(t, unclassified.StatusCode)
	assert.Error(t, unclassified.Unwrap())
}

func TestDoSingleAttempt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls, "exactly one network request per call, no retry")
}

func TestRateLimitState(t *testing.T) {
	var omitRemaining bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerRateLimitMax, "100")
		if !omitRemaining {
			w.Header().Set(headerRateLimitRemaining, "42")
		}
		w.Header().Set(headerRateLimitReset, "17")
		w.Header().Set(headerRequestID, "req-123")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.NoError(t, err)

	rate := client.RateLimit()
	assert.Equal(t, 100, rate.Max)
	assert.Equal(t, 42, rate.Remaining)
	assert.Equal(t, 17, rate.Reset)
	assert.Equal(t, "req-123", rate.RequestID)

	// An absent header keeps the prior recorded value.
	omitRemaining = true
	_, err = client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, client.RateLimit().Remaining)
}

func TestRateLimitStateUpdatedOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerRateLimitRemaining, "0")
		w.Header().Set(headerRateLimitReset, "55")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.Error(t, err)

	rate := client.RateLimit()
	assert.Equal(t, 0, rate.Remaining)
	assert.Equal(t, 55, rate.Reset)
}
