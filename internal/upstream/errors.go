package upstream

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMissingCredential is returned before any network call when no API key is configured.
	ErrMissingCredential = errors.New("upstream credential not configured")
	// ErrProviderUnavailable is returned when a decorator has nothing to delegate to.
	ErrProviderUnavailable = errors.New("upstream provider unavailable")
)

const redactedMarker = "[REDACTED]"

// StatusError reports a failed upstream exchange: a non-2xx status or an
// envelope whose errors field is non-empty.
type StatusError struct {
	Provider   string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s (status=%d)", e.Provider, e.Path, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s", e.Provider, e.Path, msg)
}

// Temporary reports whether retrying could help.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500
}

// RateLimitError captures rate limit responses from the upstream API.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// ShapeError reports a payload that decoded but does not have the expected structure.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Path == "" {
		return "unexpected upstream payload: " + e.Reason
	}
	return fmt.Sprintf("unexpected upstream payload from %s: %s", e.Path, e.Reason)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// AsShapeError attempts to unwrap an error into a ShapeError.
func AsShapeError(err error) (*ShapeError, bool) {
	var shErr *ShapeError
	if errors.As(err, &shErr) {
		return shErr, true
	}
	return nil, false
}

// Redactor scrubs secrets out of strings bound for clients or logs.
type Redactor func(string) string

// NewRedactor returns a Redactor that masks every non-empty secret.
func NewRedactor(secrets ...string) Redactor {
	kept := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return func(msg string) string {
		for _, s := range kept {
			msg = strings.ReplaceAll(msg, s, redactedMarker)
		}
		return msg
	}
}
