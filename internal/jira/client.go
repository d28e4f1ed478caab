package jira

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gi8lino/jirafind/internal/jql"
)

// Default timeouts for one search round trip.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Searcher is an interface for Jira search API calls.
type Searcher interface {
	Search(ctx context.Context, q jql.Query) (*SearchResult, error)
}

// Client handles communication with the Jira REST API.
type Client struct {
	APIURL *url.URL     // Base API URL (must include /rest/api/X)
	Client *http.Client // Underlying HTTP client
	auth   AuthFunc
}

// NewClient returns a Jira client with the given base URL and authentication function.
// connectTimeout bounds connection establishment, requestTimeout the full round trip.
func NewClient(apiURL *url.URL, auth AuthFunc, skipVerify bool, connectTimeout, requestTimeout time.Duration) *Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: skipVerify,
		},
	}
	return &Client{
		APIURL: apiURL,
		Client: &http.Client{Transport: tr, Timeout: requestTimeout},
		auth:   auth,
	}
}

// Search performs a single JQL search request against the Jira API.
// Transport failures and body decode failures are returned wrapped; non-200
// status codes are classified into the package's API errors.
func (c *Client) Search(ctx context.Context, q jql.Query) (*SearchResult, error) {
	if strings.TrimSpace(q.JQL) == "" {
		return nil, fmt.Errorf("missing JQL query")
	}

	params := url.Values{}
	params.Set("jql", q.JQL)
	params.Set("maxResults", strconv.Itoa(q.MaxResults))
	params.Set("fields", strings.Join(q.Fields, ","))

	body, status, err := c.doRequest(ctx, http.MethodGet, "search?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, classifyStatus(status, body)
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if result.Issues == nil {
		result.Issues = []Issue{}
	}
	return &result, nil
}

// doRequest performs an authenticated GET and returns response body and status.
func (c *Client) doRequest(ctx context.Context, method, path string) (response []byte, statusCode int, err error) {
	// Parse path into relative URL with optional query
	relURL, err := url.Parse(path)
	if err != nil {
		return nil, 0, fmt.Errorf("parse path: %w", err)
	}
	fullURL := c.APIURL.ResolveReference(relURL).String()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	c.auth(req) // apply authentication

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
