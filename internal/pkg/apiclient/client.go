// Package apiclient talks to a running editor API over HTTP.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/MGTheTrain/renpy-visual-editor/internal/api/rest/v1"

	fastshot "github.com/opus-domini/fast-shot"
)

// Client wraps the editor API endpoints used by the CLI
type Client struct {
	http         fastshot.ClientHttpMethods
	retryBackoff time.Duration
}

const (
	maxAttempts  = 3
	backoffRate  = 2.0
	defaultRetry = time.Second
)

// Option tunes a Client
type Option func(*Client)

// WithRetryBackoff sets the initial backoff between attempts
func WithRetryBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		c.retryBackoff = backoff
	}
}

// New creates a Client against baseURL, e.g. http://localhost:8000
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http: fastshot.NewClient(baseURL).
			Config().SetTimeout(timeout).
			Header().Add("Accept", "application/json").
			Build(),
		retryBackoff: defaultRetry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health calls the liveness probe
func (c *Client) Health(ctx context.Context) (*v1.HealthResponse, error) {
	resp, err := c.http.GET("/health").
		Context().Set(ctx).
		Retry().SetExponentialBackoff(c.retryBackoff, maxAttempts, backoffRate).
		Retry().WithRetryCondition(retryable).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var res v1.HealthResponse
	if err := parseHTTPResponse(*resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListProjects returns every project, newest first
func (c *Client) ListProjects(ctx context.Context) ([]v1.ProjectResponse, error) {
	resp, err := c.http.GET(v1.BasePath+"/projects/").
		Context().Set(ctx).
		Retry().SetExponentialBackoff(c.retryBackoff, maxAttempts, backoffRate).
		Retry().WithRetryCondition(retryable).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var res []v1.ProjectResponse
	if err := parseHTTPResponse(*resp, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListCharacters returns the characters of a project
func (c *Client) ListCharacters(ctx context.Context, projectID string) ([]v1.CharacterResponse, error) {
	if projectID == "" {
		return nil, errors.New("projectID cannot be empty")
	}

	resp, err := c.http.GET(v1.BasePath+"/characters/"+projectID).
		Context().Set(ctx).
		Retry().SetExponentialBackoff(c.retryBackoff, maxAttempts, backoffRate).
		Retry().WithRetryCondition(retryable).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var res []v1.CharacterResponse
	if err := parseHTTPResponse(*resp, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Export asks the server to generate the script of a project
func (c *Client) Export(ctx context.Context, projectID string) (*v1.ExportResponse, error) {
	if projectID == "" {
		return nil, errors.New("projectID cannot be empty")
	}

	resp, err := c.http.POST(v1.BasePath+"/export/"+projectID).
		Context().Set(ctx).
		Retry().SetExponentialBackoff(c.retryBackoff, maxAttempts, backoffRate).
		Retry().WithRetryCondition(retryable).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var res v1.ExportResponse
	if err := parseHTTPResponse(*resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// retryable limits retries to server errors; client errors are final and
// keep their body for parseHTTPResponse.
func retryable(resp *fastshot.Response) bool {
	return resp.Status().Is5xxServerError()
}

// parseHTTPResponse decodes a successful body into result. Error bodies
// carrying a detail field are surfaced as that detail.
func parseHTTPResponse[T any](resp fastshot.Response, result *T) error {
	if resp.Status().IsError() {
		msg, err := resp.Body().AsString()
		if err != nil {
			return fmt.Errorf("failed to read error response: %w", err)
		}
		return &APIError{Message: detailOf(msg)}
	}

	if err := resp.Body().AsJSON(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
