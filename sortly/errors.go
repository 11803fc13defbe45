package sortly

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ValidationError indicates a caller-supplied argument failed a local
// precondition. No network request is made when this is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("sortly: invalid %s: %s", e.Field, e.Message)
	}
	return "sortly: " + e.Message
}

// AuthorizationError indicates the API rejected the request's credentials
// (HTTP 401 or 403).
type AuthorizationError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("sortly: authorization failed (status %d): %s", e.StatusCode, e.Message)
}

// ClientRequestError indicates the API rejected the request itself
// (4xx other than 401/403/429, including 404 on non-GET requests).
type ClientRequestError struct {
	StatusCode int
	Message    string
	// Body is the decoded error body, when the response carried valid JSON.
	Body json.RawMessage
}

// Error implements the error interface
func (e *ClientRequestError) Error() string {
	return fmt.Sprintf("sortly: request failed (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error was a 404 response.
func (e *ClientRequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// RateLimitError indicates the API returned HTTP 429. The client never
// retries internally; ResetSeconds carries the most recently recorded
// rate-limit reset hint so the caller knows how long to wait.
type RateLimitError struct {
	StatusCode   int
	ResetSeconds int
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("sortly: rate limit exceeded (status %d), quota resets in %d seconds", e.StatusCode, e.ResetSeconds)
}

// ServerError indicates a 5xx response. It keeps the original request's
// method and URL so failures can be debugged without verbose logging.
type ServerError struct {
	StatusCode int
	Message    string
	Method     string
	URL        string
	Body       json.RawMessage
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("sortly: server error (status %d) for %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
}

// UnclassifiedError covers transport-level failures (DNS, refused
// connections, timeouts before a response arrives) and any response
// status the classifier does not recognize, redirects included.
type UnclassifiedError struct {
	// StatusCode is zero for transport failures.
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *UnclassifiedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sortly: %s: %v", e.Message, e.Err)
	}
	return "sortly: " + e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *UnclassifiedError) Unwrap() error {
	return e.Err
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

// IsRateLimited reports whether err is a RateLimitError.
func IsRateLimited(err error) bool {
	var rateErr *RateLimitError
	return errors.As(err, &rateErr)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
