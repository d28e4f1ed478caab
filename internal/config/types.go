package config

// Config aggregates everything one invocation needs beyond the filter itself.
// File-backed fields come from the optional YAML config; credentials are
// resolved from the environment and never read from a file directly.
type Config struct {
	BaseURL         string   `yaml:"baseURL"`         // Tracker root, e.g. https://jira.example.com
	DefaultAssignee string   `yaml:"defaultAssignee"` // Assignee used when no filter flag is given
	MaxResults      int      `yaml:"maxResults"`      // Page size cap
	Fields          []string `yaml:"fields"`          // Issue fields to request
	SkipTLSVerify   bool     `yaml:"skipTLSVerify"`   // Disable TLS certificate verification

	Username    string `yaml:"-"` // From JIRA_USERNAME
	BearerToken string `yaml:"-"` // From JIRA_BEARER_TOKEN
}
