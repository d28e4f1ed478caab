package jira

// SearchResult represents the top-level structure from the JIRA search API
type SearchResult struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
}

// Issue represents a single issue in the search result
type Issue struct {
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

// Fields represents the inner fields of a JIRA issue
type Fields struct {
	Summary  string `json:"summary"`
	Status   *Named `json:"status"`   // nullable
	Priority *Named `json:"priority"` // nullable
	Assignee *User  `json:"assignee"` // nullable
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

// Named is any issue field whose only interesting part is its name.
type Named struct {
	Name string `json:"name"`
}

// User represents the assignee or reporter of the issue
type User struct {
	DisplayName string `json:"displayName"`
}

// StatusName returns the status name, or "Unknown" when the field is absent.
func (f Fields) StatusName() string {
	if f.Status == nil || f.Status.Name == "" {
		return "Unknown"
	}
	return f.Status.Name
}

// PriorityName returns the priority name, or "None" when the field is absent.
func (f Fields) PriorityName() string {
	if f.Priority == nil || f.Priority.Name == "" {
		return "None"
	}
	return f.Priority.Name
}
