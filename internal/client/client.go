package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DefaultBaseURL is used when no API endpoint is configured.
const DefaultBaseURL = "https://api.deploysweep.dev/v1"

// Client is a lightweight API client for the deployment platform. It performs
// exactly two operations: list a project's deployments and delete one
// deployment by name.
type Client struct {
	BaseURL    string
	httpClient *http.Client
	token      string
}

// NewClient constructs a client with explicit baseURL and bearer token.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is returned for any non-2xx response or transport-level failure,
// carrying enough context to attribute the failure to a specific call.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

func (c *Client) newRequest(ctx context.Context, method, pathWithQuery string, body io.Reader) (*http.Request, error) {
	fullURL := c.BaseURL + pathWithQuery
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	if out != nil {
		req.Header.Set("Accept", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Method: req.Method, Path: req.URL.Path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// read up to 1KB of body for error message
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}
	if out == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Method: req.Method, Path: req.URL.Path, Err: err}
	}
	return json.Unmarshal(body, out)
}

func (c *Client) doJSONRequest(ctx context.Context, method, pathWithQuery string, in, out any) error {
	var body io.Reader
	if in != nil {
		inBytes, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %T: %w", in, err)
		}
		body = bytes.NewReader(inBytes)
	}
	req, err := c.newRequest(ctx, method, pathWithQuery, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doJSON(req, out)
}

// FetchOptions configures listing behavior.
type FetchOptions struct {
	ShowProgress bool
}

// ListDeployments fetches all deployments for a project as raw records. The
// endpoint returns a bare JSON array; any other top-level shape is an error so
// a partial or mis-shaped listing is never acted on.
func (c *Client) ListDeployments(ctx context.Context, team, project string, opts FetchOptions) ([]map[string]any, error) {
	path := fmt.Sprintf("/teams/%s/projects/%s/deployments",
		url.PathEscape(team), url.PathEscape(project))

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Fetching deployments"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("deployments"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := c.doJSON(req, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("unexpected response shape from GET %s: expected a deployment list, got %s", path, typeErr.Value)
		}
		return nil, err
	}

	if bar != nil {
		_ = bar.Add(len(records))
		_ = bar.Finish()
	}
	return records, nil
}

// DeleteDeployment deletes one deployment by name. The API expects an empty
// JSON object body on the delete endpoint.
func (c *Client) DeleteDeployment(ctx context.Context, name string) error {
	path := fmt.Sprintf("/deployments/%s/delete", url.PathEscape(name))
	return c.doJSONRequest(ctx, http.MethodPost, path, struct{}{}, nil)
}
