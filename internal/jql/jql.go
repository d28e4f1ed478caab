package jql

import (
	"fmt"
	"strings"
)

// DefaultMaxResults bounds a search to a single page of results.
const DefaultMaxResults = 50

// DefaultFields returns the issue fields requested when none are configured.
func DefaultFields() []string {
	return []string{"summary", "status", "assignee", "priority", "created", "updated"}
}

// Filter is a single search intent that can be rendered as a JQL clause.
type Filter interface {
	Clause() string   // JQL fragment without ordering
	Describe() string // human-readable description for output headers
}

// Assignee filters issues by their assignee.
// The value is inserted verbatim and unquoted; the tracker treats
// unquoted literals as identifiers, so callers must pass a bare username.
type Assignee string

// Clause returns the JQL fragment for the assignee filter.
func (a Assignee) Clause() string { return fmt.Sprintf("assignee = %s", string(a)) }

// Describe returns a description of the assignee filter.
func (a Assignee) Describe() string { return fmt.Sprintf("assigned to %s", string(a)) }

// Label filters issues carrying a single label.
// The label is double-quoted as-is; embedded quotes are not escaped.
type Label string

// Clause returns the JQL fragment for the label filter.
func (l Label) Clause() string { return fmt.Sprintf("labels = \"%s\"", string(l)) }

// Describe returns a description of the label filter.
func (l Label) Describe() string { return fmt.Sprintf("labeled %q", string(l)) }

// Labels filters issues by several labels at once. MatchAll selects
// AND semantics (issue carries every label) over the default OR.
type Labels struct {
	Values   []string
	MatchAll bool
}

// Clause returns the parenthesized JQL fragment joining one clause per label.
func (l Labels) Clause() string {
	parts := make([]string, 0, len(l.Values))
	for _, v := range l.Values {
		parts = append(parts, fmt.Sprintf("labels = \"%s\"", v))
	}
	sep := " OR "
	if l.MatchAll {
		sep = " AND "
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Describe returns a description of the multi-label filter.
func (l Labels) Describe() string {
	mode := "any"
	if l.MatchAll {
		mode = "all"
	}
	return fmt.Sprintf("labeled with %s of %s", mode, strings.Join(l.Values, ", "))
}

// Query is a ready-to-send search request: the JQL text plus page parameters.
// It is never mutated after construction.
type Query struct {
	JQL        string
	MaxResults int
	Fields     []string
}

// Build translates a filter into a Query, ordering by most recent update.
// Non-positive maxResults and empty fields fall back to the defaults.
func Build(f Filter, maxResults int, fields []string) Query {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(fields) == 0 {
		fields = DefaultFields()
	}
	return Query{
		JQL:        f.Clause() + " ORDER BY updated DESC",
		MaxResults: maxResults,
		Fields:     fields,
	}
}
