package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Querier is the read surface the dashboard needs from the remote store.
// It is implemented by *Client and can be faked in tests.
type Querier interface {
	SelectAll(ctx context.Context, table string, dest any) error
	SelectOrdered(ctx context.Context, table, column string, dest any) error
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Client talks to the PostgREST endpoint of a Supabase project.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	timeout   time.Duration
	userAgent string
}

const (
	restPrefix       = "/rest/v1"
	defaultUserAgent = "deafcat/0.1"
	maxErrorBody     = 64 << 10
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the project at rawURL using apiKey for both
// the apikey header and the bearer token.
func NewClient(rawURL, apiKey string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		apiKey:    strings.TrimSpace(apiKey),
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.http.Timeout != c.timeout {
		// Copy so a caller-supplied client is left untouched.
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// BaseURL returns the project URL the client was built with.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// SelectAll decodes every row of table into dest (a pointer to a slice).
func (c *Client) SelectAll(ctx context.Context, table string, dest any) error {
	if c == nil {
		return fetchErr(table, fmt.Errorf("client is nil"))
	}
	values := url.Values{}
	values.Set("select", "*")
	return c.get(ctx, table, values, dest)
}

// SelectOrdered decodes every row of table into dest, ordered ascending by column.
func (c *Client) SelectOrdered(ctx context.Context, table, column string, dest any) error {
	if c == nil {
		return fetchErr(table, fmt.Errorf("client is nil"))
	}
	column = strings.TrimSpace(column)
	if column == "" {
		return fetchErr(table, fmt.Errorf("order column required"))
	}
	values := url.Values{}
	values.Set("select", "*")
	values.Set("order", column+".asc")
	return c.get(ctx, table, values, dest)
}

func (c *Client) get(ctx context.Context, table string, values url.Values, dest any) error {
	table = strings.TrimSpace(table)
	if table == "" {
		return fetchErr(table, fmt.Errorf("table name required"))
	}
	if err := c.doURL(ctx, http.MethodGet, c.tableURL(table, values), dest); err != nil {
		return fetchErr(table, err)
	}
	return nil
}

// tableURL appends the REST prefix and table to the base path, keeping any
// sub-path the project is served under.
func (c *Client) tableURL(table string, values url.Values) *url.URL {
	u := *c.baseURL
	u.Path = path.Join("/", c.baseURL.Path, restPrefix, table)
	u.RawPath = ""
	u.RawQuery = values.Encode()
	return &u
}

func (c *Client) doURL(ctx context.Context, method string, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil {
			apiErr.Message = strings.TrimSpace(string(body))
		}
	}
	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("supabase url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse supabase url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
