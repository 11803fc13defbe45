package sortly

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// emptyResult is returned for responses that carry no body (204, and
// 2xx responses with an empty body). Always an object, never nil.
var emptyResult = json.RawMessage(`{}`)

// classify maps an HTTP response to a decoded JSON value or a typed
// error. Rate-limit headers are recorded on every branch, success or
// failure, before the status code is inspected.
func (c *Client) classify(method, requestURL string, resp *http.Response) (json.RawMessage, error) {
	c.recordRateLimit(resp.Header)

	status := resp.StatusCode
	if status == http.StatusNoContent {
		return emptyResult, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnclassifiedError{StatusCode: status, Message: "failed to read response body", Err: err}
	}

	switch {
	case status >= 200 && status < 300:
		if len(body) == 0 {
			return emptyResult, nil
		}
		return json.RawMessage(body), nil

	case status >= 300 && status < 400:
		// Redirects are never followed or decoded here; fail loud.
		return nil, &UnclassifiedError{
			StatusCode: status,
			Message:    fmt.Sprintf("unexpected redirect (status %d) from %s %s", status, method, requestURL),
		}

	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, &AuthorizationError{StatusCode: status, Message: errorMessage(body, status)}

	case status == http.StatusNotFound:
		// A missing resource on read is not exceptional for this API.
		if method == http.MethodGet {
			return nil, nil
		}
		return nil, &ClientRequestError{StatusCode: status, Message: errorMessage(body, status), Body: rawBody(body)}

	case status == http.StatusTooManyRequests:
		return nil, &RateLimitError{StatusCode: status, ResetSeconds: c.RateLimit().Reset}

	case status >= 400 && status < 500:
		return nil, &ClientRequestError{StatusCode: status, Message: errorMessage(body, status), Body: rawBody(body)}

	case status >= 500 && status < 600:
		return nil, &ServerError{
			StatusCode: status,
			Message:    errorMessage(body, status),
			Method:     method,
			URL:        requestURL,
			Body:       rawBody(body),
		}

	default:
		return nil, &UnclassifiedError{
			StatusCode: status,
			Message:    fmt.Sprintf("unexpected status %d from %s %s", status, method, requestURL),
		}
	}
}

// errorMessage extracts a human-readable message from an error body.
// Bodies are not guaranteed to be JSON even when the Content-Type says
// so; on decode failure the raw text is used as-is.
func errorMessage(body []byte, status int) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}

	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	return text
}

// rawBody returns the body as raw JSON when it is valid JSON, nil
// otherwise.
func rawBody(body []byte) json.RawMessage {
	if !json.Valid(body) {
		return nil
	}
	return json.RawMessage(body)
}
