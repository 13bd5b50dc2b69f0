package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

const resourcePath = "users"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPClient implements Client against the JSON REST API.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL. Every request
// is bounded by timeout in addition to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid API url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API url %q: missing host", baseURL)
	}
	return &HTTPClient{baseURL: u, http: &http.Client{Timeout: timeout}}, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, http.MethodGet, c.endpoint(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Record{}
	}
	return out, nil
}

func (c *HTTPClient) Create(ctx context.Context, draft models.Draft) (*models.Record, error) {
	var out models.Record
	if err := c.do(ctx, http.MethodPost, c.endpoint(), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, draft models.Draft) (*models.Record, error) {
	var out models.Record
	if err := c.do(ctx, http.MethodPatch, c.endpoint(id), draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(id), nil, nil)
}

func (c *HTTPClient) endpoint(id ...string) string {
	u := c.baseURL.JoinPath(resourcePath)
	if len(id) > 0 {
		u = u.JoinPath(id[0])
	}
	return u.String()
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when
// non-nil). Non-2xx statuses are returned as *APIError.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return parseAPIError(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
