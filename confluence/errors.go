package confluence

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// ValidationError reports a missing or empty required argument. It is
// returned before any network I/O is performed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// UnsupportedOperationError reports a capability mismatch between an
// operation and the target deployment (e.g. move on a server deployment).
type UnsupportedOperationError struct {
	Operation  string
	Deployment Deployment
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported on %s deployments", e.Operation, e.Deployment)
}

// ApiError is a non-success response with a structured Confluence error
// body. It carries the server's message and status code.
type ApiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Reason     string `json:"reason,omitempty"`
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("confluence: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited returns true if this is a rate limit error.
func (e *ApiError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsServerError returns true if this is a server error.
func (e *ApiError) IsServerError() bool {
	return e.StatusCode >= 500
}

// UnexpectedStatusError reports a response status outside the documented
// success set for an operation, with no structured error body available.
type UnexpectedStatusError struct {
	StatusCode int
	Expected   []int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d (expected %v)", e.StatusCode, e.Expected)
}

// apiErrorFromBody maps a non-success response to an ApiError when the body
// parses as a structured error, and an UnexpectedStatusError otherwise.
func apiErrorFromBody(statusCode int, body []byte) error {
	var apiErr ApiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = statusCode
		}
		return &apiErr
	}
	return &UnexpectedStatusError{StatusCode: statusCode, Body: string(body)}
}

// isRetryable determines if an error should be retried.
func isRetryable(err error) bool {
	if apiErr, ok := err.(*ApiError); ok {
		return apiErr.IsRateLimited() || apiErr.IsServerError()
	}
	if statusErr, ok := err.(*UnexpectedStatusError); ok {
		return statusErr.StatusCode == 429 || statusErr.StatusCode >= 500
	}
	return false
}
