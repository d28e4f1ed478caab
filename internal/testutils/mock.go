package testutils

import (
	"context"

	"github.com/gi8lino/jirafind/internal/jira"
	"github.com/gi8lino/jirafind/internal/jql"
)

// MockSearcher implements jira.Searcher with a configurable function.
type MockSearcher struct {
	SearchFn func(ctx context.Context, q jql.Query) (*jira.SearchResult, error)
}

// Search forwards to SearchFn.
func (m *MockSearcher) Search(ctx context.Context, q jql.Query) (*jira.SearchResult, error) {
	return m.SearchFn(ctx, q)
}
