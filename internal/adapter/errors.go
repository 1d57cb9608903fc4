package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates that the request exceeded its time budget.
	ErrTimeout = errors.New("request timed out")
	// ErrConnectionFailure indicates that the endpoint could not be reached
	// (DNS failure, refused or reset connection).
	ErrConnectionFailure = errors.New("connection failure")
	// ErrHTTPStatus indicates a response status outside the 2xx range.
	// The concrete error is always a [*StatusError].
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrTransport indicates any other request-level failure.
	ErrTransport = errors.New("transport error")
	// ErrDecode indicates that the response body is not valid JSON or does
	// not have the top-level shape the profile expects.
	ErrDecode = errors.New("decode error")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s for url %s: %s", status, e.URL, e.Body)
	}
	return fmt.Sprintf("%s for url %s", status, e.URL)
}

// Unwrap makes every StatusError match [ErrHTTPStatus].
func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}
