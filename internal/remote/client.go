// Package remote implements the project store against a schedtrack server's
// REST API, so the CLI runs unchanged whether the database is a local file or
// a shared daemon.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
)

// APIError is a non-2xx response from the server, with the error code the
// server sent in its JSON body.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Code)
}

// Client implements repository.ProjectStore over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ repository.ProjectStore = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Create(ctx context.Context, p *domain.Project) error {
	return c.do(ctx, http.MethodPost, "/api/projects", p, nil)
}

func (c *Client) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) List(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) Update(ctx context.Context, p *domain.Project) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", p.ID), p, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// DeleteAll has no single endpoint; it deletes the listed records one by one.
func (c *Client) DeleteAll(ctx context.Context) error {
	projects, err := c.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := c.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) ListChanges(ctx context.Context, projectID int64) ([]repository.ChangeRecord, error) {
	var changes []repository.ChangeRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/changes", projectID), nil, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// do sends one request and decodes the response. 404s map onto
// repository.ErrNotFound so callers can treat both stores identically; other
// error statuses surface as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, repository.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Code: payload.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
