package jira

import (
	"errors"
	"fmt"
)

// Sentinel errors for the HTTP status codes the search endpoint is known
// to return. Each message carries enough detail for users to self-diagnose.
var (
	ErrUnauthorized = errors.New("unauthorized: bearer token is invalid or expired")
	ErrForbidden    = errors.New("forbidden: token lacks permission to search issues")
	ErrNotFound     = errors.New("not found: search endpoint missing, check the base URL")
)

// StatusError is returned for every unclassified non-200 status code.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// classifyStatus maps a non-200 status code to its error.
func classifyStatus(code int, body []byte) error {
	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	default:
		return &StatusError{StatusCode: code, Body: string(body)}
	}
}
