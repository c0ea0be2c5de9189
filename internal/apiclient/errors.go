package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by every 401 response.
	ErrUnauthorized = errors.New("authentication failed")
	// ErrNotFound is matched by every 404 response.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx response. Message is the server's detail when one was
// provided, else a generic status message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// newError builds an Error from a response body. FastAPI validation
// failures carry a list in detail; only string details are surfaced.
func newError(status int, body []byte, fallback string) *Error {
	msg := fallback
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", status)
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
			msg = detail
		}
	}
	return &Error{StatusCode: status, Message: msg}
}
