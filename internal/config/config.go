package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/containeroo/resolver"
	"gopkg.in/yaml.v3"
)

// Environment variables holding the required credentials.
const (
	EnvUsername    = "JIRA_USERNAME"
	EnvBearerToken = "JIRA_BEARER_TOKEN"
)

// Load reads the optional YAML configuration from the given path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ResolveCredentials reads the required credentials from the environment.
// Values are passed through the resolver, so a variable may point at an
// indirect source (e.g. "file:/run/secrets/jira-token"). A missing variable
// is a configuration error reported before any network activity.
func (c *Config) ResolveCredentials(getEnv func(string) string) error {
	username, err := resolveEnv(getEnv, EnvUsername)
	if err != nil {
		return err
	}
	token, err := resolveEnv(getEnv, EnvBearerToken)
	if err != nil {
		return err
	}

	c.Username = username
	c.BearerToken = token
	return nil
}

// Validate checks that the configuration can address the search endpoint.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL is required (--base-url or config file)")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: scheme and host are required", c.BaseURL)
	}
	return nil
}

// APIURL returns the REST API base for v2 search requests.
// The trailing slash matters for relative reference resolution.
func (c *Config) APIURL() (*url.URL, error) {
	return url.Parse(strings.TrimRight(c.BaseURL, "/") + "/rest/api/2/")
}

// resolveEnv fetches one environment variable and resolves value indirection.
func resolveEnv(getEnv func(string) string, key string) (string, error) {
	raw := strings.TrimSpace(getEnv(key))
	if raw == "" {
		return "", fmt.Errorf("missing required environment variable %s", key)
	}
	val, err := resolver.ResolveVariable(raw)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return val, nil
}
