package jira

import (
	"net/http"
	"strings"
)

// AuthFunc mutates an outgoing request to carry authentication.
type AuthFunc func(*http.Request)

// NewBearerAuth returns an AuthFunc setting a Bearer Authorization header.
func NewBearerAuth(token string) AuthFunc {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}
}
