package common

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound reports a detail lookup miss. Callers render it as an empty
// state, never as a failure banner.
var ErrNotFound = errors.New("not found")

// ValidationError is raised before any network call when user input is
// incomplete or malformed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range sortedKeys(e.Fields) {
		parts = append(parts, e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AuthError means the server rejected credentials or a registration attempt.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError is a transport or server failure. Status is zero when no
// response was received at all.
type NetworkError struct {
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("server responded %d: %s", e.Status, msg)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match a 404 response.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// ServerMessage returns the message an error response carried in its body,
// or fallback when err carries none.
func ServerMessage(err error, fallback string) string {
	var ne *NetworkError
	if errors.As(err, &ne) && ne.Status >= http.StatusBadRequest && ne.Message != "" {
		return ne.Message
	}
	return fallback
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
