package football

import (
	"errors"
	"fmt"
)

// ValidationError reports a request rejected before any upstream call.
type ValidationError struct {
	Endpoint string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FetchError wraps an upstream or shape failure for one endpoint.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Summary(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Summary is the client-safe message for the failure.
func (e *FetchError) Summary() string {
	if msg, ok := fetchFailures[e.Endpoint]; ok {
		return msg
	}
	return "Failed to fetch data"
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
