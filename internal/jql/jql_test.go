package jql_test

import (
	"testing"

	"github.com/gi8lino/jirafind/internal/jql"

	"github.com/stretchr/testify/assert"
)

func TestAssignee(t *testing.T) {
	t.Parallel()

	t.Run("clause is unquoted", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Assignee("jdoe"), 0, nil)
		assert.Equal(t, "assignee = jdoe ORDER BY updated DESC", q.JQL)
	})

	t.Run("describes the assignee", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "assigned to jdoe", jql.Assignee("jdoe").Describe())
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()

	t.Run("clause quotes the label", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Label("backend"), 0, nil)
		assert.Equal(t, `labels = "backend" ORDER BY updated DESC`, q.JQL)
	})

	t.Run("embedded quotes are kept verbatim", func(t *testing.T) {
		t.Parallel()

		// Known limitation: labels are not escaped before quoting.
		assert.Equal(t, `labels = "a"b"`, jql.Label(`a"b`).Clause())
	})

	t.Run("describes the label", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `labeled "backend"`, jql.Label("backend").Describe())
	})
}

func TestLabels(t *testing.T) {
	t.Parallel()

	t.Run("match all joins with AND", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Labels{Values: []string{"a", "b"}, MatchAll: true}, 0, nil)
		assert.Equal(t, `(labels = "a" AND labels = "b") ORDER BY updated DESC`, q.JQL)
	})

	t.Run("match any joins with OR", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Labels{Values: []string{"a", "b"}}, 0, nil)
		assert.Equal(t, `(labels = "a" OR labels = "b") ORDER BY updated DESC`, q.JQL)
	})

	t.Run("single label stays parenthesized", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `(labels = "a")`, jql.Labels{Values: []string{"a"}}.Clause())
	})

	t.Run("describe names the mode", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "labeled with all of a, b", jql.Labels{Values: []string{"a", "b"}, MatchAll: true}.Describe())
		assert.Equal(t, "labeled with any of a, b", jql.Labels{Values: []string{"a", "b"}}.Describe())
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Assignee("jdoe"), 0, nil)
		assert.Equal(t, jql.DefaultMaxResults, q.MaxResults)
		assert.Equal(t, jql.DefaultFields(), q.Fields)
	})

	t.Run("keeps explicit overrides", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Assignee("jdoe"), 10, []string{"summary", "updated"})
		assert.Equal(t, 10, q.MaxResults)
		assert.Equal(t, []string{"summary", "updated"}, q.Fields)
	})

	t.Run("negative max results falls back to default", func(t *testing.T) {
		t.Parallel()

		q := jql.Build(jql.Label("x"), -5, nil)
		assert.Equal(t, jql.DefaultMaxResults, q.MaxResults)
	})
}
