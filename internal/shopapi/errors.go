package shopapi

import (
	"errors"
	"fmt"
)

// ErrNoCredential is returned when a login succeeds but the backend did not
// issue a session cookie. The caller cannot proceed to authenticated calls.
var ErrNoCredential = errors.New("login response carried no session credential")

// APIError is a non-2xx response from the shop API. Message holds the
// human-readable "message" field of the response body when the backend
// provided one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shop api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("shop api: status %d: %s", e.Status, e.Message)
}

// ErrorMessage extracts the backend-provided message from an error chain.
// It returns "" when the error is not an APIError or the response body had
// no message field, letting callers fall back to a generic message.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
